package domain

import "time"

// Tenant is an isolated customer of the platform. It owns one store and
// every commerce record mirrored for that store.
type Tenant struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
