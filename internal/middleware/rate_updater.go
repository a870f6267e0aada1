package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

// Variable global para almacenar la instancia del actualizador de cotización
var rateUpdaterInstance *services.RateUpdater

// SetRateUpdater establece la instancia del actualizador de cotización
func SetRateUpdater(updater *services.RateUpdater) {
	rateUpdaterInstance = updater
}

// GetRate devuelve la cotización de referencia USDT/USD en caché
func GetRate(c *gin.Context) {
	if rateUpdaterInstance == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Cotización no disponible"})
		return
	}

	rate, lastUpdated := rateUpdaterInstance.CurrentRate()
	if rate == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Cotización no disponible todavía"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pair":         "USDT/USD",
		"rate":         rate,
		"last_updated": lastUpdated,
	})
}
