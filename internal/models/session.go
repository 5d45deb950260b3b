package models

import (
	"time"

	"github.com/google/uuid"
)

// Values of the session_type enum column.
const (
	SessionChat         = "chat"
	SessionVideo        = "video"
	SessionResumeReview = "resume_review"
	SessionMock         = "mock"
)

// Values of the session_status enum column. No transition rules are
// enforced anywhere; this is a closed value set, not a state machine.
const (
	SessionPending   = "pending"
	SessionConfirmed = "confirmed"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// SessionDB represents a mentorship session record in the database.
// Both user edges are deletion-restricted at the schema level.
type SessionDB struct {
	SessionID     uuid.UUID  `json:"id" db:"id"`
	MentorID      uuid.UUID  `json:"mentor_id" db:"mentor_id"`
	MenteeID      uuid.UUID  `json:"mentee_id" db:"mentee_id"`
	Topic         *string    `json:"topic" db:"topic"`
	SessionType   string     `json:"session_type" db:"session_type"` // chat | video | resume_review | mock
	ScheduledTime time.Time  `json:"scheduled_time" db:"scheduled_time"`
	Status        string     `json:"status" db:"status"` // pending | confirmed | completed | cancelled
	Feedback      *string    `json:"feedback" db:"feedback"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}
