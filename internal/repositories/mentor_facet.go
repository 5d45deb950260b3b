package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mentorhq/mentorship-api/internal/logger"
)

// MentorAvailabilityWriteRepository handles availability slot inserts
type MentorAvailabilityWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMentorAvailabilityWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MentorAvailabilityWriteRepository {
	return &MentorAvailabilityWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an availability slot. Overlapping or duplicate slots are
// accepted; there is no uniqueness on (mentor_id, day, start_time, end_time).
func (r *MentorAvailabilityWriteRepository) Save(ctx context.Context, mentorID uuid.UUID, day, startTime, endTime string) (uuid.UUID, error) {
	query := `
		INSERT INTO mentor_availability (id, mentor_id, day, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	args := []any{uuid.New(), mentorID, day, startTime, endTime}

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
		"args", []any{mentorID, day},
		"error", err,
	)

	return id, err
}

// MentorSkillWriteRepository handles skill inserts
type MentorSkillWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMentorSkillWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MentorSkillWriteRepository {
	return &MentorSkillWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a skill row for a mentor.
func (r *MentorSkillWriteRepository) Save(ctx context.Context, mentorID uuid.UUID, skill string) (uuid.UUID, error) {
	query := `
		INSERT INTO mentor_skills (id, mentor_id, skill)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	args := []any{uuid.New(), mentorID, skill}

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
		"args", []any{mentorID, skill},
		"error", err,
	)

	return id, err
}
