package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mentorhq/mentorship-api/internal/models"
	"github.com/mentorhq/mentorship-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMenteeService_CreateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	menteeUser := &models.UserDB{UserID: userID, Role: models.RoleMentee}
	mentorUser := &models.UserDB{UserID: userID, Role: models.RoleMentor}
	goal := "Become a staff engineer"

	tests := []struct {
		name            string
		user            *models.UserDB
		userErr         error
		existingProfile *models.MenteeProfileDB
		profileErr      error
		saveErr         error
		wantErr         error
	}{
		{
			name: "successful creation",
			user: menteeUser,
		},
		{
			name:    "user does not exist",
			user:    nil,
			wantErr: services.ErrInvalidMenteeUser,
		},
		{
			name:    "user is not a mentee",
			user:    mentorUser,
			wantErr: services.ErrInvalidMenteeUser,
		},
		{
			name:            "profile already exists",
			user:            menteeUser,
			existingProfile: &models.MenteeProfileDB{ProfileID: uuid.New()},
			wantErr:         services.ErrMenteeProfileExists,
		},
		{
			name:    "concurrent creation hits unique constraint",
			user:    menteeUser,
			saveErr: &pgconn.PgError{Code: "23505"},
			wantErr: services.ErrMenteeProfileExists,
		},
		{
			name:    "user lookup error",
			userErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
		{
			name:    "writer error",
			user:    menteeUser,
			saveErr: errors.New("save error"),
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockProfileReader := services.NewMockMenteeProfileReader(ctrl)
			mockProfileWriter := services.NewMockMenteeProfileWriter(ctrl)

			svc := services.NewMenteeService(mockUsers, mockProfileReader, mockProfileWriter)

			mockUsers.EXPECT().
				GetByID(gomock.Any(), userID).
				Return(tt.user, tt.userErr)

			if tt.userErr == nil && tt.user != nil && tt.user.Role == models.RoleMentee {
				mockProfileReader.EXPECT().
					GetByUserID(gomock.Any(), userID).
					Return(tt.existingProfile, tt.profileErr)

				if tt.existingProfile == nil && tt.profileErr == nil {
					mockProfileWriter.EXPECT().
						Save(gomock.Any(), userID, &goal, nil, nil, nil).
						Return(uuid.New(), tt.saveErr)
				}
			}

			err := svc.CreateProfile(context.Background(), userID, &goal, nil, nil, nil)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
