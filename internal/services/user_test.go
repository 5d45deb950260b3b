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
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := "Jane"
	last := "Doe"

	tests := []struct {
		name         string
		email        string
		verifierErr  error
		existingUser *models.UserDB
		readerErr    error
		saveErr      error
		wantErr      error
	}{
		{
			name:  "successful registration",
			email: "jane@example.com",
		},
		{
			name:        "invalid email domain",
			email:       "jane@no-mx.example",
			verifierErr: services.ErrInvalidEmailDomain,
			wantErr:     services.ErrInvalidEmailDomain,
		},
		{
			name:         "email already exists",
			email:        "taken@example.com",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrEmailAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "jane@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:    "concurrent registration hits unique constraint",
			email:   "raced@example.com",
			saveErr: &pgconn.PgError{Code: "23505"},
			wantErr: services.ErrEmailAlreadyExists,
		},
		{
			name:    "writer error",
			email:   "jane@example.com",
			saveErr: errors.New("save error"),
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockVerifier := services.NewMockEmailVerifier(ctrl)

			svc := services.NewUserService(mockReader, mockWriter, mockVerifier, nil)

			mockVerifier.EXPECT().
				VerifyDomain(gomock.Any(), tt.email).
				Return(tt.verifierErr)

			if tt.verifierErr == nil {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.email).
					Return(tt.existingUser, tt.readerErr)
			}

			if tt.verifierErr == nil && tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), &first, &last, tt.email, gomock.Any(), models.RoleMentee).
					Return(uuid.New(), tt.saveErr)
			}

			id, err := svc.Create(context.Background(), &first, &last, tt.email, "secret", models.RoleMentee)

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

func TestUserService_Create_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockVerifier := services.NewMockEmailVerifier(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockVerifier, nil)

	mockVerifier.EXPECT().VerifyDomain(gomock.Any(), "jane@example.com").Return(nil)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)

	var storedHash string
	mockWriter.EXPECT().
		Save(gomock.Any(), nil, nil, "jane@example.com", gomock.Any(), models.RoleMentee).
		DoAndReturn(func(_ context.Context, _, _ *string, _, passwordHash, _ string) (uuid.UUID, error) {
			storedHash = passwordHash
			return uuid.New(), nil
		})

	_, err := svc.Create(context.Background(), nil, nil, "jane@example.com", "secret", models.RoleMentee)
	assert.NoError(t, err)

	assert.NotEqual(t, "secret", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret")))
}

func TestUserService_Create_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockVerifier := services.NewMockEmailVerifier(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockVerifier, mockKafka)

	mockVerifier.EXPECT().VerifyDomain(gomock.Any(), "jane@example.com").Return(nil)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), nil, nil, "jane@example.com", gomock.Any(), models.RoleMentee).
		Return(uuid.New(), nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Create(context.Background(), nil, nil, "jane@example.com", "secret", models.RoleMentee)
	assert.NoError(t, err)
}

func TestUserService_GetByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Email: "jane@example.com"}

	tests := []struct {
		name      string
		email     string
		found     *models.UserDB
		readerErr error
		wantUser  *models.UserDB
		wantErr   error
	}{
		{
			name:     "found",
			email:    "jane@example.com",
			found:    user,
			wantUser: user,
		},
		{
			name:    "not found",
			email:   "ghost@example.com",
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name:      "reader error",
			email:     "jane@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			svc := services.NewUserService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockEmailVerifier(ctrl), nil)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.found, tt.readerErr)

			got, err := svc.GetByEmail(context.Background(), tt.email)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUser, got)
			}
		})
	}
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockEmailVerifier(ctrl), nil)

	users := []models.UserDB{{UserID: uuid.New()}, {UserID: uuid.New()}}
	mockReader.EXPECT().List(gomock.Any()).Return(users, nil)

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	user := &models.UserDB{UserID: uuid.New(), Email: "jane@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name         string
		password     string
		found        *models.UserDB
		readerErr    error
		touchErr     error
		expectTouch  bool
		wantErr      error
	}{
		{
			name:        "successful login",
			password:    "secret",
			found:       user,
			expectTouch: true,
		},
		{
			name:     "user does not exist",
			password: "secret",
			wantErr:  services.ErrUserDoesNotExist,
		},
		{
			name:     "invalid password",
			password: "wrong",
			found:    user,
			wantErr:  services.ErrInvalidPassword,
		},
		{
			name:      "reader error",
			password:  "secret",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:        "last login write error",
			password:    "secret",
			found:       user,
			expectTouch: true,
			touchErr:    errors.New("update error"),
			wantErr:     errors.New("update error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewUserService(mockReader, mockWriter, services.NewMockEmailVerifier(ctrl), nil)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), "jane@example.com").
				Return(tt.found, tt.readerErr)

			if tt.expectTouch {
				mockWriter.EXPECT().
					TouchLastLogin(gomock.Any(), user.UserID, gomock.AssignableToTypeOf(time.Time{})).
					Return(tt.touchErr)
			}

			err := svc.Login(context.Background(), "jane@example.com", tt.password)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
