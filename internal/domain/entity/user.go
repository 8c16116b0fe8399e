package entity

import "time"

// User representa una usuaria de la aplicación (la dueña de la tienda o
// alguien de su equipo).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
