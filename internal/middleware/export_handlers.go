package middleware

import (
	"net/http"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/accounting"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/repository"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

// ExportTransactionsExcel descarga las transacciones como .xlsx.
// Con ?todo=1 exporta el historial completo; si no, respeta ?start= y ?end=
// (fechas YYYY-MM-DD, cualquiera de las dos puede faltar).
func ExportTransactionsExcel(c *gin.Context) {
	transactions, ok := exportRows(c)
	if !ok {
		return
	}

	content, err := services.BuildTransactionsExcel(transactions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transacciones.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// ExportTransactionsPDF descarga las transacciones como PDF, con los mismos
// filtros del export a Excel.
func ExportTransactionsPDF(c *gin.Context) {
	transactions, ok := exportRows(c)
	if !ok {
		return
	}

	content, err := services.BuildTransactionsPDF(transactions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transacciones.pdf"`)
	c.Data(http.StatusOK, "application/pdf", content)
}

// exportRows resuelve los filtros del export y devuelve las transacciones
// enriquecidas. Si ya respondió un error devuelve ok=false.
func exportRows(c *gin.Context) ([]models.EnrichedTransaction, bool) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return nil, false
	}

	var start, end time.Time
	if c.Query("todo") != "1" {
		var err error
		if raw := c.Query("start"); raw != "" {
			start, err = time.Parse("2006-01-02", raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha de inicio inválida"})
				return nil, false
			}
		}
		if raw := c.Query("end"); raw != "" {
			end, err = time.Parse("2006-01-02", raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha de fin inválida"})
				return nil, false
			}
			// Incluir el día completo de la fecha de fin
			end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}

	transactions, err := repository.GetTransactionsInRange(userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}

	clients, err := repository.GetClients(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}

	names := make(map[string]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}

	rows := make([]models.EnrichedTransaction, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, accounting.Enrich(tx, names[tx.ClientID]))
	}
	return rows, true
}
