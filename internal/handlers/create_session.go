package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/models"
	"github.com/mentorhq/mentorship-api/internal/services"
)

// SessionCreator defines the interface that the session service must implement.
type SessionCreator interface {
	Create(ctx context.Context, mentorID, menteeID uuid.UUID, topic *string, sessionType string, scheduledTime time.Time, status string, feedback *string) (uuid.UUID, error)
}

// SessionCreateRequest represents the JSON body for booking a session
// swagger:model SessionCreateRequest
type SessionCreateRequest struct {
	// Mentor user id
	// required: true
	MentorID uuid.UUID `json:"mentor_id" validate:"required"`

	// Mentee user id
	// required: true
	MenteeID uuid.UUID `json:"mentee_id" validate:"required"`

	// Topic
	// example: mock interview prep
	Topic *string `json:"topic" validate:"omitempty,max=255"`

	// Session type
	// required: true
	// example: video
	SessionType string `json:"session_type" validate:"required,oneof=chat video resume_review mock"`

	// Scheduled time
	// required: true
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`

	// Status, defaults to pending
	// example: pending
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`

	// Feedback
	Feedback *string `json:"feedback"`
}

// NewCreateSessionHandler returns an HTTP handler for booking a session.
// @Summary Book a session
// @Description Creates a session between a mentor and a mentee. Both ids must reference existing users.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionCreateRequest body handlers.SessionCreateRequest true "Session booking request"
// @Success 201 {object} handlers.IDResponse "Session created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid mentor/mentee / invalid payload"
// @Router /sessions/ [post]
func NewCreateSessionHandler(svc SessionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SessionCreateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request payload"})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request payload"})
			return
		}

		status := req.Status
		if status == "" {
			status = models.SessionPending
		}

		id, err := svc.Create(r.Context(), req.MentorID, req.MenteeID, req.Topic, req.SessionType, req.ScheduledTime, status, req.Feedback)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidParticipants):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid mentor/mentee"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(IDResponse{ID: id})
	}
}
