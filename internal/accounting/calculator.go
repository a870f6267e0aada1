package accounting

import (
	"fmt"
	"math"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
)

// Derived contiene los campos calculados de una transacción.
// No se almacenan: se derivan siempre de los campos crudos.
type Derived struct {
	FeeAmount float64 `json:"fee_amount"`
	SellPrice float64 `json:"sell_price"`
	Profit    float64 `json:"profit"`
}

// Derive calcula fee_amount, sell_price y profit para una transacción.
//
//	fee_amount = usdt * fee / 100
//	sell_price = usd / usdt (0 si usdt es 0, sin importar el tipo)
//	profit     = usdt - usd - fee_amount (compra)
//	             usd - usdt - fee_amount (venta)
//
// No redondea: el redondeo a 2 decimales se aplica solo en las salidas
// finales para no acumular error a través de las agregaciones.
func Derive(transactionType string, usdt, usd, fee float64) (Derived, error) {
	if usdt < 0 || usd < 0 || fee < 0 {
		return Derived{}, fmt.Errorf("montos negativos no permitidos: usdt=%v usd=%v fee=%v", usdt, usd, fee)
	}

	feeAmount := usdt * fee / 100

	var sellPrice float64
	if usdt > 0 {
		sellPrice = usd / usdt
	}

	var profit float64
	switch transactionType {
	case models.TransactionTypeCompra:
		profit = usdt - usd - feeAmount
	case models.TransactionTypeVenta:
		profit = usd - usdt - feeAmount
	default:
		return Derived{}, fmt.Errorf("tipo de transacción desconocido: %q", transactionType)
	}

	return Derived{FeeAmount: feeAmount, SellPrice: sellPrice, Profit: profit}, nil
}

// Round2 redondea a 2 decimales. Solo para bordes de presentación/export.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
