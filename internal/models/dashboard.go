package models

// MonthlySummary resume las transacciones del mes calendario en curso.
// La ganancia es la suma del profit real de cada transacción,
// redondeada a 2 decimales al final.
type MonthlySummary struct {
	TransaccionesTotales int     `json:"transacciones_totales"`
	Compras              int     `json:"compras"`
	Ventas               int     `json:"ventas"`
	Ganancia             float64 `json:"ganancia"`
}

// TopClient es una entrada del ranking de clientes por cantidad de operaciones.
type TopClient struct {
	ClientID string `json:"client_id"`
	Client   string `json:"client"`
	Total    int    `json:"total"`
}

// Dashboard es la respuesta completa de GET /dashboard.
// Las series mensuales tienen siempre 12 posiciones (enero..diciembre)
// y acumulan todos los años juntos.
type Dashboard struct {
	Summary            MonthlySummary        `json:"summary"`
	MonthlyOperations  [12]int               `json:"monthlyOperations"`
	MonthlyClients     [12]int               `json:"monthlyClients"`
	TopClients         []TopClient           `json:"topClients"`
	LatestTransactions []EnrichedTransaction `json:"latestTransactions"`
}
