package metadata

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	r.now = fixedClock(ts)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", "abc"))

	e, ok, err := r.Get(ctx, "token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", e.Value)
	assert.True(t, ts.Equal(e.UpdatedAt), "updated_at = %v", e.UpdatedAt)
}

func TestGet_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	e, ok, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Entry{}, e)
}

func TestSet_Overwrites(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	r.now = fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, r.Set(ctx, "k", "old"))
	later := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	r.now = fixedClock(later)
	require.NoError(t, r.Set(ctx, "k", "new"))

	e, ok, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", e.Value)
	assert.True(t, later.Equal(e.UpdatedAt))
}

func TestDelete_Idempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", "1"))
	require.NoError(t, r.Delete(ctx, "x"))

	_, ok, err := r.Get(ctx, "x")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, _, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")

	err = r.Set(ctx, "k", "v")
	require.ErrorContains(t, err, "failed to set metadata[k]")

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete metadata[k]")
}
