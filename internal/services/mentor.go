package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/models"
)

// Error variables
var (
	ErrInvalidMentorUser   = errors.New("invalid mentor user")
	ErrMentorProfileExists = errors.New("mentor profile already exists")
	ErrMentorNotFound      = errors.New("mentor not found")
)

// MentorProfileReader defines read-only operations for mentor profiles.
type MentorProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MentorProfileDB, error)
}

// MentorProfileWriter defines write operations for mentor profiles.
type MentorProfileWriter interface {
	Save(ctx context.Context, userID uuid.UUID, bio, headline, location, timezone *string, hourlyRate *int) (uuid.UUID, error)
}

// AvailabilityWriter defines write operations for availability slots.
type AvailabilityWriter interface {
	Save(ctx context.Context, mentorID uuid.UUID, day, startTime, endTime string) (uuid.UUID, error)
}

// SkillWriter defines write operations for mentor skills.
type SkillWriter interface {
	Save(ctx context.Context, mentorID uuid.UUID, skill string) (uuid.UUID, error)
}

// MentorService handles mentor profiles, availability and skills.
type MentorService struct {
	users              UserReader
	profileReader      MentorProfileReader
	profileWriter      MentorProfileWriter
	availabilityWriter AvailabilityWriter
	skillWriter        SkillWriter
}

// NewMentorService creates a new MentorService instance.
func NewMentorService(
	users UserReader,
	profileReader MentorProfileReader,
	profileWriter MentorProfileWriter,
	availabilityWriter AvailabilityWriter,
	skillWriter SkillWriter,
) *MentorService {
	return &MentorService{
		users:              users,
		profileReader:      profileReader,
		profileWriter:      profileWriter,
		availabilityWriter: availabilityWriter,
		skillWriter:        skillWriter,
	}
}

// CreateProfile creates the 1:1 mentor profile for a user. The user must
// exist and hold the mentor role; a second profile for the same user is a
// conflict whether caught by the pre-check or by the unique constraint.
func (svc *MentorService) CreateProfile(
	ctx context.Context,
	userID uuid.UUID,
	bio, headline, location, timezone *string,
	hourlyRate *int,
) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil || user.Role != models.RoleMentor {
		logger.Log.Errorw("invalid mentor user", "user_id", userID)
		return ErrInvalidMentorUser
	}

	existing, err := svc.profileReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check mentor profile exists", "err", err)
		return err
	}
	if existing != nil {
		return ErrMentorProfileExists
	}

	if _, err := svc.profileWriter.Save(ctx, userID, bio, headline, location, timezone, hourlyRate); err != nil {
		if isUniqueViolation(err) {
			return ErrMentorProfileExists
		}
		logger.Log.Errorw("failed to save mentor profile", "err", err)
		return err
	}

	return nil
}

// AddAvailability adds a weekly availability slot for a mentor user.
// Overlapping slots are accepted.
func (svc *MentorService) AddAvailability(ctx context.Context, mentorID uuid.UUID, day, startTime, endTime string) error {
	user, err := svc.users.GetByID(ctx, mentorID)
	if err != nil {
		logger.Log.Errorw("failed to get mentor", "err", err)
		return err
	}
	if user == nil {
		return ErrMentorNotFound
	}

	if _, err := svc.availabilityWriter.Save(ctx, mentorID, day, startTime, endTime); err != nil {
		logger.Log.Errorw("failed to save availability", "err", err)
		return err
	}

	return nil
}

// AddSkill adds a skill fact for a mentor user.
func (svc *MentorService) AddSkill(ctx context.Context, mentorID uuid.UUID, skill string) error {
	user, err := svc.users.GetByID(ctx, mentorID)
	if err != nil {
		logger.Log.Errorw("failed to get mentor", "err", err)
		return err
	}
	if user == nil {
		return ErrMentorNotFound
	}

	if _, err := svc.skillWriter.Save(ctx, mentorID, skill); err != nil {
		logger.Log.Errorw("failed to save skill", "err", err)
		return err
	}

	return nil
}
