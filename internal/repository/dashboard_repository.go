package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/accounting"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
)

// GetUserDashboard arma el dashboard completo del usuario: consulta el
// snapshot de transacciones y clientes y delega el cálculo al paquete
// accounting. Si alguna consulta falla no se emite ningún agregado parcial.
func GetUserDashboard(db *sql.DB, userID string) (*models.Dashboard, error) {
	txRepo := NewTransactionRepository(db)
	clientRepo := NewClientRepository(db)

	transactions, err := txRepo.GetUserTransactions(userID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener las transacciones: %v", err)
	}

	clients, err := clientRepo.GetClients(userID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener los clientes: %v", err)
	}

	dashboard := accounting.BuildDashboard(transactions, clients, time.Now())
	return &dashboard, nil
}
