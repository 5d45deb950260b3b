package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/services"
)

// AvailabilityAdder defines the interface that the mentor service must implement.
type AvailabilityAdder interface {
	AddAvailability(ctx context.Context, mentorID uuid.UUID, day, startTime, endTime string) error
}

// AvailabilityCreateRequest represents the JSON body for adding an availability slot
// swagger:model AvailabilityCreateRequest
type AvailabilityCreateRequest struct {
	// Mentor user id
	// required: true
	MentorID uuid.UUID `json:"mentor_id" validate:"required"`

	// Day of week
	// required: true
	// example: Monday
	Day string `json:"day" validate:"required,max=20"`

	// Slot start
	// required: true
	// example: 09:00
	StartTime string `json:"start_time" validate:"required"`

	// Slot end
	// required: true
	// example: 11:00
	EndTime string `json:"end_time" validate:"required"`
}

// NewAddAvailabilityHandler returns an HTTP handler for adding availability.
// @Summary Add mentor availability
// @Description Adds a weekly availability slot for an existing mentor user. Overlapping slots are accepted.
// @Tags mentors
// @Accept json
// @Produce json
// @Param availabilityCreateRequest body handlers.AvailabilityCreateRequest true "Availability slot"
// @Success 201 {object} handlers.OkResponse "Slot created"
// @Failure 404 {object} handlers.ErrorResponse "Mentor not found"
// @Router /mentors/availability [post]
func NewAddAvailabilityHandler(svc AvailabilityAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AvailabilityCreateRequest

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

		if err := svc.AddAvailability(r.Context(), req.MentorID, req.Day, req.StartTime, req.EndTime); err != nil {
			switch {
			case errors.Is(err, services.ErrMentorNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Mentor not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(OkResponse{OK: true})
	}
}
