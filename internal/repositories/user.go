package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/models"
)

const userColumns = `id, first_name, last_name, email, password_hash, role,
	created_at, updated_at, last_login, is_active, verified`

// UserReadRepository handles user lookups
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id, or nil if no such row exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor, &user, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetByEmail returns the user with the given email, or nil if no such row exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor, &user, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// List returns all users ordered by creation time.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, executor, &users, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UserWriteRepository handles user inserts and login-time updates
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user row and returns its generated id. A unique-constraint
// violation on email is returned as-is for the service layer to classify.
func (r *UserWriteRepository) Save(
	ctx context.Context,
	firstName, lastName *string,
	email, passwordHash, role string,
) (uuid.UUID, error) {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`
	args := []any{uuid.New(), firstName, lastName, email, passwordHash, role}

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
		"args", []any{email, role},
		"error", err,
	)

	return id, err
}

// TouchLastLogin records a successful login on the user row.
func (r *UserWriteRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE users SET last_login = $2, updated_at = NOW() WHERE id = $1`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, id, at)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, at},
		"error", err,
	)

	return err
}
