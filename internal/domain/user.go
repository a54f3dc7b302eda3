package domain

import "time"

// User represents a registered account of the service.
type User struct {
	ID           int64
	PublicID     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
