package models

import "time"

// Client representa un cliente de la operación de cambio P2P.
// El nombre es único por usuario (comparación insensible a mayúsculas).
type Client struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Country   string    `json:"country"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
