package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

// driverName queda fijado por InitDB; lo usa Rebind para adaptar los
// placeholders de las consultas.
var driverName string

// InitDB abre la conexión: Postgres si DATABASE_URL está definida,
// o un archivo SQLite local bajo database/ si no.
func InitDB() error {
	if DB != nil {
		return nil
	}

	var err error
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		driverName = "postgres"
		DB, err = sql.Open("postgres", dsn)
	} else {
		driverName = "sqlite"
		if err := os.MkdirAll("database", 0755); err != nil {
			return err
		}
		DB, err = sql.Open("sqlite", filepath.Join("database", "p2p.db"))
	}
	if err != nil {
		return err
	}

	if err := createSchema(); err != nil {
		return err
	}

	// Ejecutar migraciones para actualizar el esquema
	return RunMigrations()
}

// Rebind adapta los placeholders "?" al driver activo ($1, $2, ... en
// Postgres). Las consultas de los repositorios se escriben siempre con "?".
func Rebind(query string) string {
	if driverName != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func createSchema() error {
	// Crear tabla de usuarios si no existe
	createUsersSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := DB.Exec(createUsersSQL); err != nil {
		return err
	}

	// Crear tabla de clientes
	createClientsSQL := `
	CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		country TEXT,
		address TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id)
	);`

	if _, err := DB.Exec(createClientsSQL); err != nil {
		return err
	}

	// Crear tabla de transacciones. Sin FOREIGN KEY hacia clients: al borrar
	// un cliente sus transacciones se conservan y los reportes muestran la
	// etiqueta de respaldo.
	createTransactionsSQL := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		client_id TEXT NOT NULL,
		transaction_type TEXT NOT NULL,
		usdt REAL NOT NULL,
		usd REAL NOT NULL,
		fee REAL NOT NULL DEFAULT 0,
		platform TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		date TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id)
	);`

	if _, err := DB.Exec(createTransactionsSQL); err != nil {
		return err
	}

	return nil
}
