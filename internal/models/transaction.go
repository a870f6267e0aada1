package models

import "time"

// Tipos de transacción: compra (el usuario adquiere USDT contra USD)
// y venta (el usuario entrega USDT por USD).
const (
	TransactionTypeCompra = "compra"
	TransactionTypeVenta  = "venta"
)

// Transaction representa una operación de compra o venta de USDT.
// Los campos derivados (fee_amount, sell_price, profit) no se almacenan:
// se calculan al leer con el paquete accounting.
type Transaction struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ClientID        string    `json:"client_id" binding:"required"`
	TransactionType string    `json:"transaction_type" binding:"required,oneof=compra venta"`
	Usdt            float64   `json:"usdt"`
	Usd             float64   `json:"usd"`
	Fee             float64   `json:"fee"` // puntos porcentuales, ej. 0.3 = 0.3%
	Platform        string    `json:"platform" binding:"required"`
	PaymentMethod   string    `json:"payment_method" binding:"required"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
}

// EnrichedTransaction es la transacción con sus campos derivados y el nombre
// del cliente, tal como la consumen el dashboard, el listado y los exports.
type EnrichedTransaction struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"client_id"`
	ClientName      string  `json:"client_name"`
	TransactionType string  `json:"transaction_type"`
	Usdt            float64 `json:"usdt"`
	Usd             float64 `json:"usd"`
	Fee             float64 `json:"fee"`
	FeeAmount       float64 `json:"fee_amount"`
	SellPrice       float64 `json:"sell_price"`
	Profit          float64 `json:"profit"`
	Platform        string  `json:"platform"`
	PaymentMethod   string  `json:"payment_method"`
	Date            string  `json:"date"` // YYYY-MM-DD
}
