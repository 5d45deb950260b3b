package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/models"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidPassword    = errors.New("invalid password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, firstName, lastName *string, email, passwordHash, role string) (uuid.UUID, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// EmailVerifier verifies that an email's domain can receive mail.
type EmailVerifier interface {
	VerifyDomain(ctx context.Context, email string) error
}

// UserService handles registration, lookups and login.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	verifier    EmailVerifier
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, verifier EmailVerifier, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		verifier:    verifier,
		kafkaWriter: kafkaWriter,
	}
}

// Create registers a new user. The email pre-check is advisory only: two
// concurrent requests can both pass it, so a unique-constraint violation at
// commit time is reported as the same conflict.
func (svc *UserService) Create(ctx context.Context, firstName, lastName *string, email, password, role string) (uuid.UUID, error) {
	if err := svc.verifier.VerifyDomain(ctx, email); err != nil {
		logger.Log.Errorw("email domain rejected", "email", email, "err", err)
		return uuid.Nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already exists", "email", email)
		return uuid.Nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	id, err := svc.writer.Save(ctx, firstName, lastName, email, string(hashedPassword), role)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	svc.publishRegistered(ctx, id, email, role)

	return id, nil
}

// List returns all users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// GetByEmail returns the user with the given email.
func (svc *UserService) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// Login authenticates a user by email and password.
func (svc *UserService) Login(ctx context.Context, email, password string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return ErrInvalidPassword
	}

	if err := svc.writer.TouchLastLogin(ctx, user.UserID, time.Now().UTC()); err != nil {
		logger.Log.Errorw("failed to record last login", "err", err)
		return err
	}

	return nil
}

// publishRegistered publishes a user-registered event to Kafka.
func (svc *UserService) publishRegistered(ctx context.Context, id uuid.UUID, email, role string) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "user_id", id)
		return
	}

	event := models.UserRegisteredEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    id.String(),
		Email:     email,
		Role:      role,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal user event", "user_id", id, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish user event", "user_id", id, "error", err)
	} else {
		logger.Log.Infow("user event published", "user_id", id)
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a Postgres foreign-key
// violation (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
