package repository

import (
	"database/sql"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/database"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/platform"
	"github.com/google/uuid"
)

// Tamaño de página del listado de transacciones.
const TransactionsPageSize = 10

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateTransaction valida y crea una transacción. Las etiquetas de
// plataforma y método de pago se rechazan si no están en las tablas de
// referencia; la comisión por defecto sale de la tabla de plataformas si el
// request no la trae.
func (r *TransactionRepository) CreateTransaction(tx *models.Transaction) error {
	if !platform.IsValid(tx.Platform) {
		return ErrPlataformaInvalida
	}
	if !platform.IsValidPaymentMethod(tx.PaymentMethod) {
		return ErrMetodoPagoInvalido
	}
	if tx.Usdt < 0 || tx.Usd < 0 || tx.Fee < 0 {
		return ErrMontoInvalido
	}

	if tx.Fee == 0 {
		tx.Fee = platform.DefaultFee(platform.Platform(tx.Platform))
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	query := database.Rebind(`
		INSERT INTO transactions (id, user_id, client_id, transaction_type, usdt, usd, fee, platform, payment_method, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.Exec(query,
		tx.ID,
		tx.UserID,
		tx.ClientID,
		tx.TransactionType,
		tx.Usdt,
		tx.Usd,
		tx.Fee,
		tx.Platform,
		tx.PaymentMethod,
		tx.Date,
		tx.CreatedAt,
	)
	return err
}

// GetUserTransactions devuelve todas las transacciones del usuario en orden
// de inserción. Es el snapshot que consumen el dashboard y los reportes.
func (r *TransactionRepository) GetUserTransactions(userID string) ([]models.Transaction, error) {
	query := database.Rebind(`
		SELECT id, user_id, client_id, transaction_type, usdt, usd, fee, platform, payment_method, date, created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY created_at ASC`)

	return r.queryTransactions(query, userID)
}

// CountTransactions cuenta las transacciones del usuario, opcionalmente
// filtradas por cliente.
func (r *TransactionRepository) CountTransactions(userID, clientID string) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE user_id = ?`
	args := []interface{}{userID}
	if clientID != "" {
		query += ` AND client_id = ?`
		args = append(args, clientID)
	}

	var count int
	err := r.db.QueryRow(database.Rebind(query), args...).Scan(&count)
	return count, err
}

// GetTransactionsPage devuelve una página del listado, las más recientes
// primero.
func (r *TransactionRepository) GetTransactionsPage(userID, clientID string, page int) ([]models.Transaction, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * TransactionsPageSize

	query := `
		SELECT id, user_id, client_id, transaction_type, usdt, usd, fee, platform, payment_method, date, created_at
		FROM transactions
		WHERE user_id = ?`
	args := []interface{}{userID}
	if clientID != "" {
		query += ` AND client_id = ?`
		args = append(args, clientID)
	}
	query += ` ORDER BY date DESC LIMIT ? OFFSET ?`
	args = append(args, TransactionsPageSize, offset)

	return r.queryTransactions(database.Rebind(query), args...)
}

// GetTransactionsInRange devuelve las transacciones del usuario dentro del
// rango pedido, las más recientes primero. Fechas en cero dejan ese extremo
// abierto; lo usan los exports.
func (r *TransactionRepository) GetTransactionsInRange(userID string, start, end time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, client_id, transaction_type, usdt, usd, fee, platform, payment_method, date, created_at
		FROM transactions
		WHERE user_id = ?`
	args := []interface{}{userID}
	if !start.IsZero() {
		query += ` AND date >= ?`
		args = append(args, start)
	}
	if !end.IsZero() {
		query += ` AND date <= ?`
		args = append(args, end)
	}
	query += ` ORDER BY date DESC`

	return r.queryTransactions(database.Rebind(query), args...)
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.ClientID,
			&tx.TransactionType,
			&tx.Usdt,
			&tx.Usd,
			&tx.Fee,
			&tx.Platform,
			&tx.PaymentMethod,
			&tx.Date,
			&tx.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
