package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/accounting"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/database"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/repository"
	"github.com/gin-gonic/gin"
)

// GetReport genera el reporte por periodo. Acepta ?tipo=semana para la
// ventana móvil de 7 días, o ?tipo=mes con ?mes= y ?anio= para un mes
// calendario puntual. Sin mes o año el pedido mensual se rechaza.
func GetReport(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	tipo := c.DefaultQuery("tipo", accounting.PeriodMes)
	mes, _ := strconv.Atoi(c.Query("mes"))
	anio, _ := strconv.Atoi(c.Query("anio"))

	report, err := repository.GetPeriodReport(database.DB, userID, tipo, mes, anio)
	if err != nil {
		switch {
		case errors.Is(err, accounting.ErrMesAnioRequeridos):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mes y año requeridos"})
		case errors.Is(err, accounting.ErrPeriodoInvalido):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de periodo inválido"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
