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

// MentorProfileReadRepository handles mentor profile lookups
type MentorProfileReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMentorProfileReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MentorProfileReadRepository {
	return &MentorProfileReadRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns the profile owned by the given user, or nil if absent.
func (r *MentorProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MentorProfileDB, error) {
	query := `
		SELECT id, user_id, bio, headline, location, timezone, rating,
		       repeat_clients_percent, total_sessions, last_session_at,
		       calendar_sync_enabled, account_status, hourly_rate, featured,
		       created_at, updated_at
		FROM mentor_profiles
		WHERE user_id = $1
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var profile models.MentorProfileDB
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

// MentorProfileWriteRepository handles mentor profile inserts
type MentorProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMentorProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MentorProfileWriteRepository {
	return &MentorProfileWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a mentor profile row and returns its generated id.
func (r *MentorProfileWriteRepository) Save(
	ctx context.Context,
	userID uuid.UUID,
	bio, headline, location, timezone *string,
	hourlyRate *int,
) (uuid.UUID, error) {
	query := `
		INSERT INTO mentor_profiles (id, user_id, bio, headline, location, timezone, hourly_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`
	args := []any{uuid.New(), userID, bio, headline, location, timezone, hourlyRate}

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
