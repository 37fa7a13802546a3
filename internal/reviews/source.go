// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reviews locates the stored reviews for a named restaurant.
//
// A Source is a read-only backend holding review records. Matching is
// exact equality on the restaurant name after lowercasing both sides;
// there is no fuzzy or partial matching. A restaurant with no reviews is
// a successful empty result, not an error.
package reviews

import (
	"errors"
	"fmt"

	"github.com/pdiddy/review-engine/pkg/types"
)

// ErrSourceNotFound reports that the review data source does not exist.
var ErrSourceNotFound = errors.New("review source not found")

// Source is a read-only backend holding review records. Implementations
// return reviews in their stored order and never mutate the backing data.
type Source interface {
	// Name identifies the backend for diagnostics.
	Name() string

	// Reviews returns every review whose restaurant name equals name
	// under case-insensitive comparison. A nil error with an empty
	// result means the restaurant simply has no reviews.
	Reviews(name string) ([]string, error)
}

// Open returns the Source selected by cfg. An empty backend defaults to
// the flat file.
func Open(cfg types.SourceConfig) (Source, error) {
	switch cfg.Backend {
	case types.BackendFile, "":
		return &FileSource{Path: cfg.Path}, nil
	case types.BackendSQLite:
		return &SQLiteSource{Path: cfg.Path}, nil
	default:
		return nil, fmt.Errorf("unknown source backend %q: use file or sqlite", cfg.Backend)
	}
}

// Lookup fetches all reviews for name from src and returns them keyed by
// the exact query string. The result slice is never nil.
func Lookup(src Source, name string) (map[string][]string, error) {
	found, err := src.Reviews(name)
	if err != nil {
		return nil, err
	}
	if found == nil {
		found = []string{}
	}
	return map[string][]string{name: found}, nil
}
