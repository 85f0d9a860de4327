package models

import "time"

// User is an account that can authenticate against the service. Created once
// at signup and immutable afterwards; no update or delete endpoint exists.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the verified subject of a bearer token, attached to the
// request context by the auth middleware. It is never persisted on its own.
type Identity struct {
	Subject string
	Email   string
}
