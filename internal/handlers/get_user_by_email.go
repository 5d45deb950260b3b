package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/models"
	"github.com/mentorhq/mentorship-api/internal/services"
)

// UserGetter defines the interface that the user service must implement.
type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// NewGetUserByEmailHandler returns an HTTP handler that looks up a user by email.
// @Summary Get user by email
// @Description Returns the user record for the given email query parameter.
// @Tags users
// @Produce json
// @Param email query string true "Email to look up"
// @Success 200 {object} handlers.UserResponse "User found"
// @Failure 400 {object} handlers.ErrorResponse "Missing email parameter"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/by-email [get]
func NewGetUserByEmailHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Missing email parameter"})
			return
		}

		user, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user))
	}
}
