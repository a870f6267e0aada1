package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/database"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
	"github.com/google/uuid"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// CreateClient valida y crea un cliente. Los campos de texto llegan ya
// recortados desde el handler; el nombre es obligatorio y único por usuario
// sin distinguir mayúsculas.
func (r *ClientRepository) CreateClient(client *models.Client) error {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return ErrNombreRequerido
	}

	exists, err := r.nameExists(client.UserID, client.Name, "")
	if err != nil {
		return err
	}
	if exists {
		return ErrClienteDuplicado
	}

	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}

	query := database.Rebind(`
		INSERT INTO clients (id, user_id, name, email, phone, country, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = r.db.Exec(query,
		client.ID,
		client.UserID,
		client.Name,
		client.Email,
		client.Phone,
		client.Country,
		client.Address,
		client.CreatedAt,
	)
	return err
}

// GetClients devuelve los clientes del usuario, los más nuevos primero.
func (r *ClientRepository) GetClients(userID string) ([]models.Client, error) {
	query := database.Rebind(`
		SELECT id, user_id, name, email, phone, country, address, created_at
		FROM clients
		WHERE user_id = ?
		ORDER BY created_at DESC`)

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var client models.Client
		err := rows.Scan(
			&client.ID,
			&client.UserID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.Country,
			&client.Address,
			&client.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

// GetClientByID devuelve el cliente solo si pertenece al usuario.
func (r *ClientRepository) GetClientByID(userID, clientID string) (*models.Client, error) {
	query := database.Rebind(`
		SELECT id, user_id, name, email, phone, country, address, created_at
		FROM clients
		WHERE id = ? AND user_id = ?`)

	client := &models.Client{}
	err := r.db.QueryRow(query, clientID, userID).Scan(
		&client.ID,
		&client.UserID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Country,
		&client.Address,
		&client.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrClienteNoEncontrado
	}
	return client, err
}

// UpdateClient actualiza los datos del cliente. La unicidad del nombre se
// vuelve a verificar excluyendo al propio cliente.
func (r *ClientRepository) UpdateClient(client *models.Client) error {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return ErrNombreRequerido
	}

	if _, err := r.GetClientByID(client.UserID, client.ID); err != nil {
		return err
	}

	exists, err := r.nameExists(client.UserID, client.Name, client.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrClienteDuplicado
	}

	query := database.Rebind(`
		UPDATE clients
		SET name = ?, email = ?, phone = ?, country = ?, address = ?
		WHERE id = ? AND user_id = ?`)

	_, err = r.db.Exec(query,
		client.Name,
		client.Email,
		client.Phone,
		client.Country,
		client.Address,
		client.ID,
		client.UserID,
	)
	return err
}

// DeleteClient elimina el cliente. Sus transacciones se conservan: los
// reportes muestran la etiqueta de respaldo en lugar del nombre.
func (r *ClientRepository) DeleteClient(userID, clientID string) error {
	if _, err := r.GetClientByID(userID, clientID); err != nil {
		return err
	}

	query := database.Rebind(`DELETE FROM clients WHERE id = ? AND user_id = ?`)
	_, err := r.db.Exec(query, clientID, userID)
	return err
}

func (r *ClientRepository) nameExists(userID, name, excludeID string) (bool, error) {
	query := database.Rebind(`
		SELECT COUNT(*) FROM clients
		WHERE user_id = ? AND LOWER(name) = LOWER(?) AND id != ?`)

	var count int
	if err := r.db.QueryRow(query, userID, name, excludeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
