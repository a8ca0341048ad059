package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountDB represents a registered account in the database
type AccountDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`       // Primary key
	Username     string    `json:"username" db:"username"`     // Unique, case-sensitive username
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash of the password
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
