package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
)

func TestCreateTransactionValidaciones(t *testing.T) {
	repo := NewTransactionRepository(setupDB(t))

	valid := models.Transaction{
		UserID:          "user-tx-valid",
		ClientID:        "c1",
		TransactionType: models.TransactionTypeCompra,
		Usdt:            100,
		Usd:             97,
		Platform:        "Binance",
		PaymentMethod:   "Zelle",
	}

	cases := []struct {
		name   string
		mutate func(*models.Transaction)
		want   error
	}{
		{"plataforma desconocida", func(tx *models.Transaction) { tx.Platform = "LocalBitcoins" }, ErrPlataformaInvalida},
		{"método de pago desconocido", func(tx *models.Transaction) { tx.PaymentMethod = "Efectivo" }, ErrMetodoPagoInvalido},
		{"usdt negativo", func(tx *models.Transaction) { tx.Usdt = -1 }, ErrMontoInvalido},
		{"usd negativo", func(tx *models.Transaction) { tx.Usd = -1 }, ErrMontoInvalido},
		{"fee negativo", func(tx *models.Transaction) { tx.Fee = -0.3 }, ErrMontoInvalido},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := valid
			tc.mutate(&tx)
			if err := repo.CreateTransaction(&tx); !errors.Is(err, tc.want) {
				t.Errorf("error = %v, esperado %v", err, tc.want)
			}
		})
	}
}

func TestCreateTransactionFeePorDefecto(t *testing.T) {
	repo := NewTransactionRepository(setupDB(t))

	cases := []struct {
		platform string
		fee      float64
		want     float64
	}{
		{"Dorado", 0, 0.3},
		{"Apolo Pay", 0, 0.2},
		{"Binance", 0, 0.28},
		{"Bybit", 0, 0},
		// Una comisión explícita no se pisa
		{"Dorado", 1.5, 1.5},
	}

	for _, tc := range cases {
		tx := &models.Transaction{
			UserID:          "user-tx-fee",
			ClientID:        "c1",
			TransactionType: models.TransactionTypeVenta,
			Usdt:            50,
			Usd:             52,
			Fee:             tc.fee,
			Platform:        tc.platform,
			PaymentMethod:   "Zelle",
		}
		if err := repo.CreateTransaction(tx); err != nil {
			t.Fatalf("CreateTransaction(%s) devolvió error: %v", tc.platform, err)
		}
		if tx.Fee != tc.want {
			t.Errorf("fee para %s con entrada %v = %v, esperado %v", tc.platform, tc.fee, tx.Fee, tc.want)
		}
	}
}

func TestCreateTransactionAsignaDefaults(t *testing.T) {
	repo := NewTransactionRepository(setupDB(t))

	tx := &models.Transaction{
		UserID:          "user-tx-defaults",
		ClientID:        "c1",
		TransactionType: models.TransactionTypeCompra,
		Usdt:            10,
		Usd:             9.7,
		Platform:        "Otro",
		PaymentMethod:   "Otro",
	}
	if err := repo.CreateTransaction(tx); err != nil {
		t.Fatalf("CreateTransaction devolvió error: %v", err)
	}

	if tx.ID == "" {
		t.Error("no se asignó ID")
	}
	if tx.Date.IsZero() {
		t.Error("no se asignó fecha")
	}
	if tx.CreatedAt.IsZero() {
		t.Error("no se asignó created_at")
	}
}

func TestGetTransactionsPage(t *testing.T) {
	repo := NewTransactionRepository(setupDB(t))
	userID := "user-tx-page"

	base := time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		tx := &models.Transaction{
			ID:              fmt.Sprintf("page-tx-%02d", i),
			UserID:          userID,
			ClientID:        "c1",
			TransactionType: models.TransactionTypeCompra,
			Usdt:            100,
			Usd:             97,
			Fee:             0.3,
			Platform:        "Binance",
			PaymentMethod:   "Zelle",
			Date:            base.AddDate(0, 0, i),
			CreatedAt:       base.AddDate(0, 0, i),
		}
		if err := repo.CreateTransaction(tx); err != nil {
			t.Fatalf("CreateTransaction devolvió error: %v", err)
		}
	}

	total, err := repo.CountTransactions(userID, "")
	if err != nil {
		t.Fatalf("CountTransactions devolvió error: %v", err)
	}
	if total != 12 {
		t.Errorf("total = %d, esperado 12", total)
	}

	first, err := repo.GetTransactionsPage(userID, "", 1)
	if err != nil {
		t.Fatalf("GetTransactionsPage devolvió error: %v", err)
	}
	if len(first) != TransactionsPageSize {
		t.Fatalf("len(página 1) = %d, esperado %d", len(first), TransactionsPageSize)
	}
	// Las más recientes primero
	if first[0].ID != "page-tx-11" {
		t.Errorf("primera entrada = %s, esperado page-tx-11", first[0].ID)
	}

	second, err := repo.GetTransactionsPage(userID, "", 2)
	if err != nil {
		t.Fatalf("GetTransactionsPage devolvió error: %v", err)
	}
	if len(second) != 2 {
		t.Errorf("len(página 2) = %d, esperado 2", len(second))
	}

	// Una página fuera de rango viene vacía
	empty, err := repo.GetTransactionsPage(userID, "", 5)
	if err != nil {
		t.Fatalf("GetTransactionsPage devolvió error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("len(página 5) = %d, esperado 0", len(empty))
	}
}

func TestGetTransactionsPageFiltradoPorCliente(t *testing.T) {
	repo := NewTransactionRepository(setupDB(t))
	userID := "user-tx-filtro"

	base := time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)
	for i, clientID := range []string{"c1", "c2", "c1"} {
		tx := &models.Transaction{
			UserID:          userID,
			ClientID:        clientID,
			TransactionType: models.TransactionTypeVenta,
			Usdt:            50,
			Usd:             52,
			Fee:             0.28,
			Platform:        "Binance",
			PaymentMethod:   "Zelle",
			Date:            base.AddDate(0, 0, i),
		}
		if err := repo.CreateTransaction(tx); err != nil {
			t.Fatalf("CreateTransaction devolvió error: %v", err)
		}
	}

	page, err := repo.GetTransactionsPage(userID, "c1", 1)
	if err != nil {
		t.Fatalf("GetTransactionsPage devolvió error: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("len(página c1) = %d, esperado 2", len(page))
	}

	total, err := repo.CountTransactions(userID, "c2")
	if err != nil {
		t.Fatalf("CountTransactions devolvió error: %v", err)
	}
	if total != 1 {
		t.Errorf("total de c2 = %d, esperado 1", total)
	}
}

func TestGetTransactionsInRange(t *testing.T) {
	repo := NewTransactionRepository(setupDB(t))
	userID := "user-tx-rango"

	dates := []time.Time{
		time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		tx := &models.Transaction{
			UserID:          userID,
			ClientID:        "c1",
			TransactionType: models.TransactionTypeCompra,
			Usdt:            10,
			Usd:             9.7,
			Fee:             0.3,
			Platform:        "Dorado",
			PaymentMethod:   "Paypal",
			Date:            date,
		}
		if err := repo.CreateTransaction(tx); err != nil {
			t.Fatalf("CreateTransaction devolvió error: %v", err)
		}
	}

	start := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.July, 31, 23, 59, 59, 0, time.UTC)

	inJuly, err := repo.GetTransactionsInRange(userID, start, end)
	if err != nil {
		t.Fatalf("GetTransactionsInRange devolvió error: %v", err)
	}
	if len(inJuly) != 1 {
		t.Errorf("len(julio) = %d, esperado 1", len(inJuly))
	}

	// Extremos en cero dejan el rango abierto
	fromJuly, err := repo.GetTransactionsInRange(userID, start, time.Time{})
	if err != nil {
		t.Fatalf("GetTransactionsInRange devolvió error: %v", err)
	}
	if len(fromJuly) != 2 {
		t.Errorf("len(desde julio) = %d, esperado 2", len(fromJuly))
	}

	all, err := repo.GetTransactionsInRange(userID, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("GetTransactionsInRange devolvió error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(todo) = %d, esperado 3", len(all))
	}
}
