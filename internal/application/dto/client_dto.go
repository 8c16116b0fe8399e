package dto

import "time"

// CreateClientRequest entrada para registrar un cliente.
type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Phone string `json:"phone" validate:"required"`
	VIP   bool   `json:"vip"`
}

// UpdateClientRequest entrada para actualizar un cliente (campos opcionales).
type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	VIP   *bool   `json:"vip"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	VIP       bool      `json:"vip"`
	CreatedAt time.Time `json:"created_at"`
}
