package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/models"
)

// MenteeProfileReadRepository handles mentee profile lookups
type MenteeProfileReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMenteeProfileReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MenteeProfileReadRepository {
	return &MenteeProfileReadRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns the profile owned by the given user, or nil if absent.
func (r *MenteeProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MenteeProfileDB, error) {
	query := `
		SELECT id, user_id, career_goal, preferred_language, career_stage, location,
		       created_at, updated_at, is_active
		FROM mentee_profiles
		WHERE user_id = $1
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var profile models.MenteeProfileDB
	err := sqlx.GetContext(ctx, executor, &profile, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

// MenteeProfileWriteRepository handles mentee profile inserts
type MenteeProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMenteeProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MenteeProfileWriteRepository {
	return &MenteeProfileWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a mentee profile row and returns its generated id.
func (r *MenteeProfileWriteRepository) Save(
	ctx context.Context,
	userID uuid.UUID,
	careerGoal, preferredLanguage, careerStage, location *string,
) (uuid.UUID, error) {
	query := `
		INSERT INTO mentee_profiles (id, user_id, career_goal, preferred_language, career_stage, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`
	args := []any{uuid.New(), userID, careerGoal, preferredLanguage, careerStage, location}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, executor, &id, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return id, err
}
