package database

import (
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations() error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Índices para las consultas por usuario del dashboard y los reportes
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_clients_user ON clients(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions(user_id, date);`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_client ON transactions(client_id);`,
	}

	for _, stmt := range indexes {
		if _, err := DB.Exec(stmt); err != nil {
			log.Printf("Error al crear índice: %v", err)
			// No retornamos error: el índice puede existir ya en bases viejas
			// y queremos que la migración continúe
		}
	}

	return nil
}
