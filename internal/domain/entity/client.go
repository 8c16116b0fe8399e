package entity

import "time"

// Client representa un cliente de la tienda. Las ventas lo referencian de
// forma débil (guardan snapshot del nombre), así que puede borrarse sin
// afectar el historial.
type Client struct {
	ID        string
	Name      string
	Phone     string
	VIP       bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
