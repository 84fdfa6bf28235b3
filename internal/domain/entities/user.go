package entities

import "time"

// User is a shop operator allowed to use the API.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is what the identity gateway extracts from a verified token.
type Identity struct {
	SubjectID string
	Email     string
	ExpiresAt time.Time
}
