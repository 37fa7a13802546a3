// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reviews

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSource reads reviews from an existing SQLite database holding a
// reviews(restaurant TEXT, review TEXT) table. The database is opened
// read-only; this backend never writes.
type SQLiteSource struct {
	Path string
}

func (s *SQLiteSource) Name() string { return "sqlite" }

// Reviews returns the review column of every matching row, in rowid
// order, mirroring the flat file's order-of-appearance rule.
func (s *SQLiteSource) Reviews(name string) ([]string, error) {
	// sql.Open alone does not touch the file; stat it so a missing
	// database surfaces as ErrSourceNotFound rather than a query error.
	if _, err := os.Stat(s.Path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return nil, fmt.Errorf("checking review source %s: %w", s.Path, err)
	}

	db, err := sql.Open("sqlite3", "file:"+s.Path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening review source %s: %w", s.Path, err)
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT review FROM reviews WHERE LOWER(restaurant) = LOWER(?) ORDER BY rowid`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("querying review source %s: %w", s.Path, err)
	}
	defer rows.Close()

	var found []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scanning review row: %w", err)
		}
		found = append(found, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading review rows: %w", err)
	}

	return found, nil
}
