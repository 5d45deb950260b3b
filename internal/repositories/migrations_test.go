package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySchema_Idempotent(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	// setup already applied the schema once; a second run must be a no-op
	assert.NoError(t, ApplySchema(context.Background(), db))

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema='public'"))
	assert.GreaterOrEqual(t, count, 18)
}
