package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account of the blog service. PasswordHash is opaque
// to every layer above the repository and is never serialized.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
