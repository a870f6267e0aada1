package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/database"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/repository"
	"github.com/gin-gonic/gin"
)

// GetDashboard arma el dashboard del usuario: resumen del mes en curso,
// series mensuales de operaciones y clientes, top de clientes y últimas
// transacciones.
func GetDashboard(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	dashboard, err := repository.GetUserDashboard(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
