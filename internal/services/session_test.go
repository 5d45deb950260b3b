package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mentorhq/mentorship-api/internal/models"
	"github.com/mentorhq/mentorship-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSessionService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mentorID := uuid.New()
	menteeID := uuid.New()
	scheduled := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mentor := &models.UserDB{UserID: mentorID, Role: models.RoleMentor}
	mentee := &models.UserDB{UserID: menteeID, Role: models.RoleMentee}

	tests := []struct {
		name      string
		mentor    *models.UserDB
		mentorErr error
		mentee    *models.UserDB
		menteeErr error
		saveErr   error
		wantErr   error
	}{
		{
			name:   "successful booking",
			mentor: mentor,
			mentee: mentee,
		},
		{
			name:    "mentor does not exist",
			mentor:  nil,
			mentee:  mentee,
			wantErr: services.ErrInvalidParticipants,
		},
		{
			name:    "mentee does not exist",
			mentor:  mentor,
			mentee:  nil,
			wantErr: services.ErrInvalidParticipants,
		},
		{
			name:      "mentor lookup error",
			mentorErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "mentee lookup error",
			mentor:    mentor,
			menteeErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:    "concurrent delete hits foreign key",
			mentor:  mentor,
			mentee:  mentee,
			saveErr: &pgconn.PgError{Code: "23503"},
			wantErr: services.ErrInvalidParticipants,
		},
		{
			name:    "writer error",
			mentor:  mentor,
			mentee:  mentee,
			saveErr: errors.New("save error"),
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockSessionWriter(ctrl)

			svc := services.NewSessionService(mockUsers, mockWriter, nil)

			mockUsers.EXPECT().
				GetByID(gomock.Any(), mentorID).
				Return(tt.mentor, tt.mentorErr)

			if tt.mentorErr == nil {
				mockUsers.EXPECT().
					GetByID(gomock.Any(), menteeID).
					Return(tt.mentee, tt.menteeErr)
			}

			if tt.mentorErr == nil && tt.menteeErr == nil && tt.mentor != nil && tt.mentee != nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), mentorID, menteeID, nil, models.SessionVideo, scheduled, models.SessionPending, nil).
					Return(uuid.New(), tt.saveErr)
			}

			id, err := svc.Create(context.Background(), mentorID, menteeID, nil, models.SessionVideo, scheduled, models.SessionPending, nil)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
			}
		})
	}
}

func TestSessionService_Create_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mentorID := uuid.New()
	menteeID := uuid.New()
	scheduled := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mockUsers := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockSessionWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewSessionService(mockUsers, mockWriter, mockKafka)

	mockUsers.EXPECT().GetByID(gomock.Any(), mentorID).Return(&models.UserDB{UserID: mentorID}, nil)
	mockUsers.EXPECT().GetByID(gomock.Any(), menteeID).Return(&models.UserDB{UserID: menteeID}, nil)

	sessionID := uuid.New()
	mockWriter.EXPECT().
		Save(gomock.Any(), mentorID, menteeID, nil, models.SessionChat, scheduled, models.SessionPending, nil).
		Return(sessionID, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	id, err := svc.Create(context.Background(), mentorID, menteeID, nil, models.SessionChat, scheduled, models.SessionPending, nil)
	assert.NoError(t, err)
	assert.Equal(t, sessionID, id)
}
