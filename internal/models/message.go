package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageDB represents a direct message between two users
type MessageDB struct {
	MessageID  uuid.UUID  `json:"id" db:"id"`
	SenderID   uuid.UUID  `json:"sender_id" db:"sender_id"`
	ReceiverID uuid.UUID  `json:"receiver_id" db:"receiver_id"`
	Content    string     `json:"content" db:"content"`
	IsUrgent   bool       `json:"is_urgent" db:"is_urgent"`
	Read       bool       `json:"read" db:"read"`
	SentAt     *time.Time `json:"sent_at" db:"sent_at"`
	Delivered  *time.Time `json:"delivered" db:"delivered"`
}
