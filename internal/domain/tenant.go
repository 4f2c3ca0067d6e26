package domain

import "time"

// Tenant representa uma barbearia (unidade de isolamento de dados)
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
