package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mentorhq/mentorship-api/internal/logger"
)

// PricingPlanWriteRepository handles pricing plan inserts
type PricingPlanWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPricingPlanWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PricingPlanWriteRepository {
	return &PricingPlanWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a pricing plan row and returns its generated id.
func (r *PricingPlanWriteRepository) Save(
	ctx context.Context,
	name string,
	description *string,
	price int,
	duration string,
	features *string,
) (uuid.UUID, error) {
	query := `
		INSERT INTO pricing_plans (id, name, description, price, duration, features, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`
	args := []any{uuid.New(), name, description, price, duration, features}

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
		"args", []any{name, duration},
		"error", err,
	)

	return id, err
}

// UserPlanWriteRepository handles plan assignment inserts
type UserPlanWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserPlanWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserPlanWriteRepository {
	return &UserPlanWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user plan assignment and returns its generated id.
// No existence pre-check is performed here; the foreign keys on user_id and
// plan_id enforce referential integrity at commit time.
func (r *UserPlanWriteRepository) Save(
	ctx context.Context,
	userID, planID uuid.UUID,
	startDate, endDate time.Time,
) (uuid.UUID, error) {
	query := `
		INSERT INTO user_plans (id, user_id, plan_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	args := []any{uuid.New(), userID, planID, startDate, endDate}

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
		"args", []any{userID, planID},
		"error", err,
	)

	return id, err
}
