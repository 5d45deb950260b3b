package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/models"
)

// UserLister defines the interface that the user service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// NewListUsersHandler returns an HTTP handler that lists all users.
// @Summary List users
// @Description Returns all user records.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.UserResponse "All users"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/ [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, newUserResponse(&users[i]))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
