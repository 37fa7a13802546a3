// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reviews

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDataDB creates a fixture database with the reviews schema.
func writeDataDB(t *testing.T, records [][2]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE reviews (restaurant TEXT, review TEXT)`)
	require.NoError(t, err)

	for _, rec := range records {
		_, err = db.Exec(`INSERT INTO reviews (restaurant, review) VALUES (?, ?)`, rec[0], rec[1])
		require.NoError(t, err)
	}
	return path
}

func TestSQLiteSourceReviews(t *testing.T) {
	path := writeDataDB(t, [][2]string{
		{"McDonald's", "The food was awful. The service was incredible."},
		{"Subway", "The food was good. The service was bad."},
		{"McDonald's", "Average food. Forgettable service."},
	})
	src := &SQLiteSource{Path: path}

	t.Run("returns matches in insertion order", func(t *testing.T) {
		got, err := src.Reviews("McDonald's")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"The food was awful. The service was incredible.",
			"Average food. Forgettable service.",
		}, got)
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		got, err := src.Reviews("mcdonald's")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("unknown restaurant is empty, not an error", func(t *testing.T) {
		got, err := src.Reviews("Wendy's")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSQLiteSourceMissing(t *testing.T) {
	src := &SQLiteSource{Path: filepath.Join(t.TempDir(), "missing.db")}

	_, err := src.Reviews("McDonald's")
	require.ErrorIs(t, err, ErrSourceNotFound)
}
