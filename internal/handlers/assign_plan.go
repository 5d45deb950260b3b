package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/services"
)

// PlanAssigner defines the interface that the pricing service must implement.
type PlanAssigner interface {
	AssignPlan(ctx context.Context, userID, planID uuid.UUID, startDate, endDate time.Time) (uuid.UUID, error)
}

// UserPlanCreateRequest represents the JSON body for assigning a plan to a user
// swagger:model UserPlanCreateRequest
type UserPlanCreateRequest struct {
	// User id
	// required: true
	UserID uuid.UUID `json:"user_id" validate:"required"`

	// Plan id
	// required: true
	PlanID uuid.UUID `json:"plan_id" validate:"required"`

	// Assignment start
	// required: true
	StartDate time.Time `json:"start_date" validate:"required"`

	// Assignment end
	// required: true
	EndDate time.Time `json:"end_date" validate:"required"`
}

// NewAssignPlanHandler returns an HTTP handler for assigning a plan to a user.
// @Summary Assign plan to user
// @Description Assigns a pricing plan to a user over a date range. Referential integrity is enforced by the store.
// @Tags pricing
// @Accept json
// @Produce json
// @Param userPlanCreateRequest body handlers.UserPlanCreateRequest true "Plan assignment request"
// @Success 201 {object} handlers.IDResponse "Assignment created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user or plan / invalid payload"
// @Router /pricing/user-plans [post]
func NewAssignPlanHandler(svc PlanAssigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserPlanCreateRequest

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

		id, err := svc.AssignPlan(r.Context(), req.UserID, req.PlanID, req.StartDate, req.EndDate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPlanAssignment):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid user or plan"})
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
