package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
)

// Límite de entradas para el ranking de clientes y el feed de últimas
// transacciones del dashboard.
const dashboardLimit = 20

// MonthlySummary reduce las transacciones al resumen del mes calendario que
// contiene a now. La ganancia suma el profit real por tipo y se redondea a
// 2 decimales recién al final.
func MonthlySummary(transactions []models.Transaction, now time.Time) models.MonthlySummary {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var summary models.MonthlySummary
	var ganancia float64

	for _, tx := range transactions {
		if tx.Date.Before(monthStart) || !tx.Date.Before(monthEnd) {
			continue
		}
		summary.TransaccionesTotales++

		derived, err := Derive(tx.TransactionType, tx.Usdt, tx.Usd, tx.Fee)
		if err != nil {
			continue
		}

		switch tx.TransactionType {
		case models.TransactionTypeCompra:
			summary.Compras++
		case models.TransactionTypeVenta:
			summary.Ventas++
		}
		ganancia += derived.Profit
	}

	summary.Ganancia = Round2(ganancia)
	return summary
}

// MonthlyOperationsSeries cuenta transacciones por mes calendario.
// Los 12 buckets (enero..diciembre) acumulan todos los años juntos.
func MonthlyOperationsSeries(transactions []models.Transaction) [12]int {
	var series [12]int
	for _, tx := range transactions {
		series[int(tx.Date.Month())-1]++
	}
	return series
}

// MonthlyClientsSeries cuenta altas de clientes por mes calendario,
// con el mismo bucketing que las operaciones.
func MonthlyClientsSeries(clients []models.Client) [12]int {
	var series [12]int
	for _, client := range clients {
		series[int(client.CreatedAt.Month())-1]++
	}
	return series
}

// TopClients agrupa las transacciones por cliente y devuelve los 20 con más
// operaciones, en orden descendente. Si el cliente ya no existe se muestra
// la etiqueta "N/A".
func TopClients(transactions []models.Transaction, clients []models.Client) []models.TopClient {
	counts := make(map[string]int)
	var order []string
	for _, tx := range transactions {
		if _, seen := counts[tx.ClientID]; !seen {
			order = append(order, tx.ClientID)
		}
		counts[tx.ClientID]++
	}

	names := clientNames(clients)

	ranking := make([]models.TopClient, 0, len(order))
	for _, clientID := range order {
		name, ok := names[clientID]
		if !ok || name == "" {
			name = "N/A"
		}
		ranking = append(ranking, models.TopClient{
			ClientID: clientID,
			Client:   name,
			Total:    counts[clientID],
		})
	}

	// Orden estable: los empates conservan el orden de primera aparición.
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total > ranking[j].Total
	})

	if len(ranking) > dashboardLimit {
		ranking = ranking[:dashboardLimit]
	}
	return ranking
}

// LatestTransactions devuelve las 20 transacciones más recientes por fecha,
// enriquecidas con los campos derivados y el nombre del cliente.
func LatestTransactions(transactions []models.Transaction, clients []models.Client) []models.EnrichedTransaction {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > dashboardLimit {
		sorted = sorted[:dashboardLimit]
	}

	names := clientNames(clients)
	feed := make([]models.EnrichedTransaction, 0, len(sorted))
	for _, tx := range sorted {
		feed = append(feed, Enrich(tx, names[tx.ClientID]))
	}
	return feed
}

// Enrich arma la vista enriquecida de una transacción: campos derivados
// redondeados a 2 decimales y etiquetas con sus valores de respaldo
// ("-" para cliente y plataforma, "N/A" para método de pago).
func Enrich(tx models.Transaction, clientName string) models.EnrichedTransaction {
	derived, err := Derive(tx.TransactionType, tx.Usdt, tx.Usd, tx.Fee)
	if err != nil {
		derived = Derived{}
	}

	if clientName == "" {
		clientName = "-"
	}
	platformLabel := tx.Platform
	if platformLabel == "" {
		platformLabel = "-"
	}
	paymentLabel := tx.PaymentMethod
	if paymentLabel == "" {
		paymentLabel = "N/A"
	}

	return models.EnrichedTransaction{
		ID:              tx.ID,
		ClientID:        tx.ClientID,
		ClientName:      clientName,
		TransactionType: tx.TransactionType,
		Usdt:            tx.Usdt,
		Usd:             tx.Usd,
		Fee:             tx.Fee,
		FeeAmount:       derived.FeeAmount,
		SellPrice:       Round2(derived.SellPrice),
		Profit:          Round2(derived.Profit),
		Platform:        platformLabel,
		PaymentMethod:   paymentLabel,
		Date:            tx.Date.Format("2006-01-02"),
	}
}

// BuildDashboard arma la respuesta completa del dashboard a partir de un
// snapshot ya consultado de transacciones y clientes del usuario.
func BuildDashboard(transactions []models.Transaction, clients []models.Client, now time.Time) models.Dashboard {
	return models.Dashboard{
		Summary:            MonthlySummary(transactions, now),
		MonthlyOperations:  MonthlyOperationsSeries(transactions),
		MonthlyClients:     MonthlyClientsSeries(clients),
		TopClients:         TopClients(transactions, clients),
		LatestTransactions: LatestTransactions(transactions, clients),
	}
}

// PeriodReport arma el reporte por periodo. El resumen, los grupos por
// plataforma/método de pago y el desglose compra/venta se calculan sobre las
// transacciones dentro de la ventana; la serie de operaciones mensuales cubre
// el historial completo sin filtrar.
//
// La ganancia de este reporte suma los valores crudos de fee (no fee_amount
// ni profit). Es distinta de la ganancia del resumen mensual del dashboard
// y se mantiene así a propósito: ver PeriodReportFeeTotal.
func PeriodReport(transactions []models.Transaction, window Window) models.PeriodReport {
	var inWindow []models.Transaction
	for _, tx := range transactions {
		if window.Contains(tx.Date) {
			inWindow = append(inWindow, tx)
		}
	}

	var resumen models.PeriodSummary
	resumen.TransaccionesTotales = len(inWindow)
	resumen.Ganancia = PeriodReportFeeTotal(inWindow)

	var compras, ventas int
	for _, tx := range inWindow {
		switch tx.TransactionType {
		case models.TransactionTypeCompra:
			compras++
			resumen.Compras.Usdt += tx.Usdt
			resumen.Compras.Usd += tx.Usd
		case models.TransactionTypeVenta:
			ventas++
			resumen.Ventas.Usdt += tx.Usdt
			resumen.Ventas.Usd += tx.Usd
		}
	}

	return models.PeriodReport{
		Resumen:     resumen,
		Plataformas: groupCounts(inWindow, func(tx models.Transaction) string { return tx.Platform }, "Sin plataforma"),
		MetodosPago: groupCounts(inWindow, func(tx models.Transaction) string { return tx.PaymentMethod }, "Sin método"),
		TiposTransaccion: []models.NameValue{
			{Name: "Compras", Value: compras},
			{Name: "Ventas", Value: ventas},
		},
		OperacionesMensuales: MonthlyOperationsHistory(transactions),
	}
}

// PeriodReportFeeTotal suma los valores crudos de fee del periodo.
// No confundir con la ganancia del dashboard (MonthlySummary), que suma
// profit real: ambas definiciones conviven deliberadamente.
func PeriodReportFeeTotal(transactions []models.Transaction) float64 {
	var total float64
	for _, tx := range transactions {
		total += tx.Fee
	}
	return total
}

// MonthlyOperationsHistory cuenta operaciones por mes calendario sobre todo
// el historial, etiquetadas "MM-YYYY" en orden cronológico.
func MonthlyOperationsHistory(transactions []models.Transaction) []models.NameValue {
	counts := make(map[string]int)
	var keys []string
	for _, tx := range transactions {
		key := tx.Date.Format("2006-01")
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key]++
	}
	sort.Strings(keys)

	series := make([]models.NameValue, 0, len(keys))
	for _, key := range keys {
		t, err := time.Parse("2006-01", key)
		if err != nil {
			continue
		}
		label := fmt.Sprintf("%02d-%d", int(t.Month()), t.Year())
		series = append(series, models.NameValue{Name: label, Value: counts[key]})
	}
	return series
}

// groupCounts agrupa por etiqueta en orden de primera aparición,
// con un valor de respaldo para etiquetas vacías.
func groupCounts(transactions []models.Transaction, key func(models.Transaction) string, fallback string) []models.NameValue {
	counts := make(map[string]int)
	var order []string
	for _, tx := range transactions {
		label := key(tx)
		if label == "" {
			label = fallback
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	groups := make([]models.NameValue, 0, len(order))
	for _, label := range order {
		groups = append(groups, models.NameValue{Name: label, Value: counts[label]})
	}
	return groups
}

func clientNames(clients []models.Client) map[string]string {
	names := make(map[string]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}
	return names
}
