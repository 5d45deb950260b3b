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
	ErrInvalidMenteeUser   = errors.New("invalid mentee user")
	ErrMenteeProfileExists = errors.New("mentee profile already exists")
)

// MenteeProfileReader defines read-only operations for mentee profiles.
type MenteeProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MenteeProfileDB, error)
}

// MenteeProfileWriter defines write operations for mentee profiles.
type MenteeProfileWriter interface {
	Save(ctx context.Context, userID uuid.UUID, careerGoal, preferredLanguage, careerStage, location *string) (uuid.UUID, error)
}

// MenteeService handles mentee profiles.
type MenteeService struct {
	users         UserReader
	profileReader MenteeProfileReader
	profileWriter MenteeProfileWriter
}

// NewMenteeService creates a new MenteeService instance.
func NewMenteeService(users UserReader, profileReader MenteeProfileReader, profileWriter MenteeProfileWriter) *MenteeService {
	return &MenteeService{
		users:         users,
		profileReader: profileReader,
		profileWriter: profileWriter,
	}
}

// CreateProfile creates the 1:1 mentee profile for a user. The user must
// exist and hold the mentee role.
func (svc *MenteeService) CreateProfile(
	ctx context.Context,
	userID uuid.UUID,
	careerGoal, preferredLanguage, careerStage, location *string,
) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil || user.Role != models.RoleMentee {
		logger.Log.Errorw("invalid mentee user", "user_id", userID)
		return ErrInvalidMenteeUser
	}

	existing, err := svc.profileReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check mentee profile exists", "err", err)
		return err
	}
	if existing != nil {
		return ErrMenteeProfileExists
	}

	if _, err := svc.profileWriter.Save(ctx, userID, careerGoal, preferredLanguage, careerStage, location); err != nil {
		if isUniqueViolation(err) {
			return ErrMenteeProfileExists
		}
		logger.Log.Errorw("failed to save mentee profile", "err", err)
		return err
	}

	return nil
}
