package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/accounting"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
)

// GetPeriodReport resuelve la ventana pedida y arma el reporte por periodo
// sobre el snapshot de transacciones del usuario. Los errores de validación
// de la ventana (mes/año faltantes, tipo desconocido) se devuelven tal cual
// para que el handler los distinga de un fallo del store.
func GetPeriodReport(db *sql.DB, userID, tipo string, mes, anio int) (*models.PeriodReport, error) {
	window, err := accounting.ResolveWindow(tipo, mes, anio, time.Now())
	if err != nil {
		return nil, err
	}

	transactions, err := NewTransactionRepository(db).GetUserTransactions(userID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener las transacciones: %v", err)
	}

	report := accounting.PeriodReport(transactions, window)
	return &report, nil
}
