package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/platform"
	"github.com/gin-gonic/gin"
)

// GetPlatforms devuelve las plataformas soportadas con su comisión por
// defecto y su icono, para armar el formulario de nueva transacción.
func GetPlatforms(c *gin.Context) {
	type platformView struct {
		Name       string  `json:"name"`
		DefaultFee float64 `json:"default_fee"`
		Icon       string  `json:"icon"`
	}

	views := []platformView{}
	for _, p := range platform.All() {
		views = append(views, platformView{
			Name:       string(p),
			DefaultFee: platform.DefaultFee(p),
			Icon:       platform.Icon(p),
		})
	}

	c.JSON(http.StatusOK, views)
}

// GetPaymentMethods devuelve los métodos de pago soportados con sus iconos.
func GetPaymentMethods(c *gin.Context) {
	type methodView struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}

	views := []methodView{}
	for _, name := range platform.PaymentMethods() {
		views = append(views, methodView{Name: name, Icon: platform.PaymentMethodIcon(name)})
	}

	c.JSON(http.StatusOK, views)
}
