// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reviews

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/review-engine/pkg/types"
)

const sampleData = `McDonald's. The food was awful. The service was incredible.
Subway. The food was good. The service was bad.
this line has no delimiter
McDonald's. Average food, nothing special. Forgettable service.
Chipotle. Incredible burrito
`

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "restaurant-data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceReviews(t *testing.T) {
	src := &FileSource{Path: writeDataFile(t, sampleData)}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "exact match preserves source order and internal periods",
			query: "McDonald's",
			want: []string{
				"The food was awful. The service was incredible.",
				"Average food, nothing special. Forgettable service.",
			},
		},
		{
			name:  "match is case-insensitive",
			query: "MCDONALD'S",
			want: []string{
				"The food was awful. The service was incredible.",
				"Average food, nothing special. Forgettable service.",
			},
		},
		{
			name:  "single review",
			query: "subway",
			want:  []string{"The food was good. The service was bad."},
		},
		{
			name:  "unknown restaurant is empty, not an error",
			query: "Five Guys",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.Reviews(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileSourceMissing(t *testing.T) {
	src := &FileSource{Path: filepath.Join(t.TempDir(), "does-not-exist.txt")}

	_, err := src.Reviews("McDonald's")
	require.ErrorIs(t, err, ErrSourceNotFound)
}

func TestFileSourceSkipsMalformedLines(t *testing.T) {
	// Only the delimited line should survive; the delimiter is the first
	// ". ", so a period without a following space does not count.
	data := "no delimiter here\nAlso.no delimiter\nSubway. Fine food. Fine service.\n"
	src := &FileSource{Path: writeDataFile(t, data)}

	got, err := src.Reviews("Subway")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fine food. Fine service."}, got)
}

func TestLookup(t *testing.T) {
	src := &FileSource{Path: writeDataFile(t, sampleData)}

	t.Run("keys by the exact query string", func(t *testing.T) {
		got, err := Lookup(src, "mcdonald's")
		require.NoError(t, err)
		require.Contains(t, got, "mcdonald's")
		assert.Len(t, got["mcdonald's"], 2)
	})

	t.Run("no matches binds an empty non-nil slice", func(t *testing.T) {
		got, err := Lookup(src, "Wendy's")
		require.NoError(t, err)
		require.Contains(t, got, "Wendy's")
		assert.NotNil(t, got["Wendy's"])
		assert.Empty(t, got["Wendy's"])
	})

	t.Run("equivalent casings return identical review sets", func(t *testing.T) {
		lower, err := Lookup(src, "mcdonald's")
		require.NoError(t, err)
		upper, err := Lookup(src, "McDonald's")
		require.NoError(t, err)
		assert.Equal(t, lower["mcdonald's"], upper["McDonald's"])
	})
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.Review
		ok   bool
	}{
		{
			name: "splits at the first delimiter only",
			line: "McDonald's. The food was awful. The service was incredible.",
			want: types.Review{Restaurant: "McDonald's", Text: "The food was awful. The service was incredible."},
			ok:   true,
		},
		{
			name: "no delimiter is malformed",
			line: "just some text without the separator",
			ok:   false,
		},
		{
			name: "period without space is not a delimiter",
			line: "McDonald's.The food was bad",
			ok:   false,
		},
		{
			name: "surrounding whitespace is trimmed",
			line: "  Subway. Decent sandwich. Fast service.  ",
			want: types.Review{Restaurant: "Subway", Text: "Decent sandwich. Fast service."},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseLine(tt.line)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	t.Run("file backend", func(t *testing.T) {
		src, err := Open(types.SourceConfig{Backend: types.BackendFile, Path: "x.txt"})
		require.NoError(t, err)
		assert.Equal(t, "file", src.Name())
	})

	t.Run("empty backend defaults to file", func(t *testing.T) {
		src, err := Open(types.SourceConfig{Path: "x.txt"})
		require.NoError(t, err)
		assert.Equal(t, "file", src.Name())
	})

	t.Run("sqlite backend", func(t *testing.T) {
		src, err := Open(types.SourceConfig{Backend: types.BackendSQLite, Path: "x.db"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", src.Name())
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := Open(types.SourceConfig{Backend: "redis", Path: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown source backend")
	})
}
