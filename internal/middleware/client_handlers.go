package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/platform"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/repository"
	"github.com/gin-gonic/gin"
)

// GetClients obtiene los clientes del usuario autenticado, con la bandera
// del país resuelta para la vista.
func GetClients(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	clients, err := repository.GetClients(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type clientView struct {
		models.Client
		Flag string `json:"flag"`
	}

	views := make([]clientView, 0, len(clients))
	for _, client := range clients {
		views = append(views, clientView{Client: client, Flag: platform.FlagEmoji(client.Country)})
	}

	c.JSON(http.StatusOK, views)
}

// CreateClient crea un cliente nuevo para el usuario autenticado.
func CreateClient(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre es obligatorio"})
		return
	}

	client.UserID = userID
	client.Name = strings.TrimSpace(client.Name)
	client.Email = strings.TrimSpace(client.Email)
	client.Phone = strings.TrimSpace(client.Phone)
	client.Country = strings.TrimSpace(client.Country)
	client.Address = strings.TrimSpace(client.Address)

	if err := repository.CreateClient(&client); err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// UpdateClient actualiza un cliente existente del usuario.
func UpdateClient(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre es obligatorio"})
		return
	}

	client.ID = c.Param("id")
	client.UserID = userID
	client.Name = strings.TrimSpace(client.Name)

	if err := repository.UpdateClient(&client); err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient elimina un cliente del usuario. Sus transacciones quedan y los
// reportes muestran la etiqueta de respaldo en lugar del nombre.
func DeleteClient(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	if err := repository.DeleteClient(userID, c.Param("id")); err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondClientError traduce los errores del repositorio de clientes al
// código HTTP que corresponde: validación 400, duplicado 409, no existe 404.
func respondClientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNombreRequerido):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrClienteDuplicado):
		c.JSON(http.StatusConflict, gin.H{"error": "Este cliente ya existe"})
	case errors.Is(err, repository.ErrClienteNoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
