package models

import (
	"time"

	"github.com/google/uuid"
)

// Values of the user_role enum column.
const (
	RoleMentee = "mentee"
	RoleMentor = "mentor"
	RoleAdmin  = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID  `json:"id" db:"id"`                 // Primary key
	FirstName    *string    `json:"first_name" db:"first_name"` // Optional first name
	LastName     *string    `json:"last_name" db:"last_name"`   // Optional last name
	Email        string     `json:"email" db:"email"`           // Unique email
	PasswordHash string     `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	Role         string     `json:"role" db:"role"`             // mentee | mentor | admin
	CreatedAt    time.Time  `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"` // Last update timestamp
	LastLogin    *time.Time `json:"last_login" db:"last_login"` // Set on successful login
	IsActive     bool       `json:"is_active" db:"is_active"`
	Verified     bool       `json:"verified" db:"verified"`
}
