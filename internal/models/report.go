package models

// NameValue es un par etiqueta/cantidad para los gráficos de reportes.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TypeTotals acumula los montos de un tipo de transacción dentro del periodo.
type TypeTotals struct {
	Usdt float64 `json:"usdt"`
	Usd  float64 `json:"usd"`
}

// PeriodSummary es el resumen del reporte por periodo. Ojo: aquí la ganancia
// suma los valores crudos de fee, no el profit. Es el comportamiento histórico
// del reporte y se mantiene separado de la ganancia del dashboard.
type PeriodSummary struct {
	TransaccionesTotales int        `json:"transacciones_totales"`
	Ganancia             float64    `json:"ganancia"`
	Compras              TypeTotals `json:"compras"`
	Ventas               TypeTotals `json:"ventas"`
}

// PeriodReport es la respuesta completa de GET /reports.
// OperacionesMensuales cubre todo el historial del usuario, sin filtrar por
// el periodo, con etiquetas "MM-YYYY" en orden cronológico.
type PeriodReport struct {
	Resumen              PeriodSummary `json:"resumen"`
	Plataformas          []NameValue   `json:"plataformas"`
	MetodosPago          []NameValue   `json:"metodos_pago"`
	TiposTransaccion     []NameValue   `json:"tipos_transaccion"`
	OperacionesMensuales []NameValue   `json:"operaciones_mensuales"`
}
