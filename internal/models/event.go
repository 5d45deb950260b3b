package models

// UserRegisteredEvent is published to Kafka after a user row is created
type UserRegisteredEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// SessionBookedEvent is published to Kafka after a session row is created
type SessionBookedEvent struct {
	EventID       string `json:"event_id"`
	Timestamp     int64  `json:"timestamp"`
	SessionID     string `json:"session_id"`
	MentorID      string `json:"mentor_id"`
	MenteeID      string `json:"mentee_id"`
	SessionType   string `json:"session_type"`
	ScheduledTime string `json:"scheduled_time"`
	Status        string `json:"status"`
}
