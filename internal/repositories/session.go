package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mentorhq/mentorship-api/internal/logger"
)

// SessionWriteRepository handles session inserts
type SessionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSessionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SessionWriteRepository {
	return &SessionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a session row with the caller-supplied status and returns its id.
func (r *SessionWriteRepository) Save(
	ctx context.Context,
	mentorID, menteeID uuid.UUID,
	topic *string,
	sessionType string,
	scheduledTime time.Time,
	status string,
	feedback *string,
) (uuid.UUID, error) {
	query := `
		INSERT INTO sessions (id, mentor_id, mentee_id, topic, session_type, scheduled_time, status, feedback, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id
	`
	args := []any{uuid.New(), mentorID, menteeID, topic, sessionType, scheduledTime, status, feedback}

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
		"args", []any{mentorID, menteeID, sessionType, status},
		"error", err,
	)

	return id, err
}
