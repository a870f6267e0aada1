package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/accounting"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/repository"
	"github.com/gin-gonic/gin"
)

// CreateTransaction crea una nueva transacción para el usuario autenticado.
// La plataforma y el método de pago se validan contra las tablas de
// referencia; si el request no trae fee se usa el valor por defecto de la
// plataforma. Las transacciones no se editan ni se borran después.
func CreateTransaction(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var transaction models.Transaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction.UserID = userID

	// Validar que el cliente pertenezca al usuario
	if _, err := repository.GetClientByID(userID, transaction.ClientID); err != nil {
		if errors.Is(err, repository.ErrClienteNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := repository.CreateTransaction(&transaction); err != nil {
		switch {
		case errors.Is(err, repository.ErrPlataformaInvalida),
			errors.Is(err, repository.ErrMetodoPagoInvalido),
			errors.Is(err, repository.ErrMontoInvalido):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// GetUserTransactions lista las transacciones del usuario paginadas (10 por
// página), enriquecidas con los campos derivados y el nombre del cliente.
// Acepta ?page= y ?clientId= para filtrar por cliente.
func GetUserTransactions(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	clientID := c.Query("clientId")

	transactions, total, err := repository.GetTransactionsPage(userID, clientID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	clients, err := repository.GetClients(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	names := make(map[string]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}

	results := make([]models.EnrichedTransaction, 0, len(transactions))
	for _, tx := range transactions {
		results = append(results, accounting.Enrich(tx, names[tx.ClientID]))
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   total,
	})
}
