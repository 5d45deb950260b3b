package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrInvalidParticipants is returned when the mentor or mentee id does not
// reference an existing user.
var ErrInvalidParticipants = errors.New("invalid mentor/mentee")

// SessionWriter defines write operations for sessions.
type SessionWriter interface {
	Save(ctx context.Context, mentorID, menteeID uuid.UUID, topic *string, sessionType string, scheduledTime time.Time, status string, feedback *string) (uuid.UUID, error)
}

// SessionService handles session booking.
type SessionService struct {
	users       UserReader
	writer      SessionWriter
	kafkaWriter KafkaWriter
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(users UserReader, writer SessionWriter, kafkaWriter KafkaWriter) *SessionService {
	return &SessionService{
		users:       users,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Create books a session between a mentor and a mentee. Both ids must
// reference existing users; their roles are not checked here. The status is
// caller-supplied and no transition rules apply.
func (svc *SessionService) Create(
	ctx context.Context,
	mentorID, menteeID uuid.UUID,
	topic *string,
	sessionType string,
	scheduledTime time.Time,
	status string,
	feedback *string,
) (uuid.UUID, error) {
	mentor, err := svc.users.GetByID(ctx, mentorID)
	if err != nil {
		logger.Log.Errorw("failed to get mentor", "err", err)
		return uuid.Nil, err
	}
	mentee, err := svc.users.GetByID(ctx, menteeID)
	if err != nil {
		logger.Log.Errorw("failed to get mentee", "err", err)
		return uuid.Nil, err
	}
	if mentor == nil || mentee == nil {
		logger.Log.Errorw("invalid session participants", "mentor_id", mentorID, "mentee_id", menteeID)
		return uuid.Nil, ErrInvalidParticipants
	}

	id, err := svc.writer.Save(ctx, mentorID, menteeID, topic, sessionType, scheduledTime, status, feedback)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, ErrInvalidParticipants
		}
		logger.Log.Errorw("failed to save session", "err", err)
		return uuid.Nil, err
	}

	svc.publishBooked(ctx, id, mentorID, menteeID, sessionType, scheduledTime, status)

	return id, nil
}

// publishBooked publishes a session-booked event to Kafka.
func (svc *SessionService) publishBooked(
	ctx context.Context,
	id, mentorID, menteeID uuid.UUID,
	sessionType string,
	scheduledTime time.Time,
	status string,
) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "session_id", id)
		return
	}

	event := models.SessionBookedEvent{
		EventID:       uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		SessionID:     id.String(),
		MentorID:      mentorID.String(),
		MenteeID:      menteeID.String(),
		SessionType:   sessionType,
		ScheduledTime: scheduledTime.UTC().Format(time.RFC3339),
		Status:        status,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal session event", "session_id", id, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish session event", "session_id", id, "error", err)
	} else {
		logger.Log.Infow("session event published", "session_id", id)
	}
}
