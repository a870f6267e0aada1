package models

import "time"

// User es el dueño de los clientes y transacciones. Puede venir del flujo
// propio de signup/login o sincronizado desde Clerk vía webhook.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // El "-" evita que se serialice en JSON
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
