package models

import (
	"time"

	"github.com/google/uuid"
)

// Values of the account_status enum column.
const (
	AccountActive    = "active"
	AccountSuspended = "suspended"
)

// MentorProfileDB represents a mentor profile record in the database.
// At most one profile exists per user (unique user_id).
type MentorProfileDB struct {
	ProfileID            uuid.UUID  `json:"id" db:"id"`
	UserID               uuid.UUID  `json:"user_id" db:"user_id"`
	Bio                  *string    `json:"bio" db:"bio"`
	Headline             *string    `json:"headline" db:"headline"`
	Location             *string    `json:"location" db:"location"`
	Timezone             *string    `json:"timezone" db:"timezone"`
	Rating               float64    `json:"rating" db:"rating"`
	RepeatClientsPercent int        `json:"repeat_clients_percent" db:"repeat_clients_percent"`
	TotalSessions        int        `json:"total_sessions" db:"total_sessions"`
	LastSessionAt        *time.Time `json:"last_session_at" db:"last_session_at"`
	CalendarSyncEnabled  bool       `json:"calendar_sync_enabled" db:"calendar_sync_enabled"`
	AccountStatus        string     `json:"account_status" db:"account_status"` // active | suspended
	HourlyRate           *int       `json:"hourly_rate" db:"hourly_rate"`
	Featured             bool       `json:"featured" db:"featured"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" db:"updated_at"`
}
