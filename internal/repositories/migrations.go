package repositories

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/mentorhq/mentorship-api/internal/logger"
)

//go:embed schema.sql
var schemaSQL string

// ApplySchema creates the enum types and tables if they do not exist yet.
// The statements are idempotent, so it is safe to run on every startup.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	if err != nil {
		logger.Log.Errorw("failed to apply schema", "error", err)
		return err
	}
	logger.Log.Infow("schema applied")
	return nil
}
