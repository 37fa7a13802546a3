// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes the review-engine stages: name
// normalization, review lookup, sentiment classification, and score
// aggregation. Data flows strictly forward; every stage is a pure
// function over the previous stage's output except for the single source
// read in the lookup.
package pipeline

import (
	"github.com/pdiddy/review-engine/internal/query"
	"github.com/pdiddy/review-engine/internal/reviews"
	"github.com/pdiddy/review-engine/internal/scoring"
	"github.com/pdiddy/review-engine/internal/sentiment"
	"github.com/pdiddy/review-engine/pkg/types"
)

// Options select the optional stage implementations for a run.
type Options struct {
	// Normalizer rewrites the raw query before lookup. Nil skips
	// normalization and looks up the query as given.
	Normalizer *query.Normalizer

	// Classifier rates the fetched reviews. Nil uses the built-in
	// keyword table.
	Classifier *sentiment.Classifier
}

// Result is the outcome of one pipeline run for a single restaurant.
type Result struct {
	// Restaurant is the name used for lookup, after normalization.
	Restaurant string `json:"restaurant" yaml:"restaurant"`

	// RawQuery is the query exactly as supplied by the caller.
	RawQuery string `json:"raw_query" yaml:"raw_query"`

	// Reviews holds the fetched review texts in source order.
	Reviews []string `json:"reviews" yaml:"reviews"`

	// Ratings holds the per-review score pairs. Reviews that could not
	// be split into a food and a service segment are absent.
	Ratings []types.RatedReview `json:"ratings" yaml:"ratings"`

	// Overall is the aggregate score formatted to three decimals.
	Overall string `json:"overall" yaml:"overall"`
}

// Run executes normalize → lookup → classify → aggregate for rawQuery
// against src.
func Run(src reviews.Source, rawQuery string, opts Options) (Result, error) {
	name := rawQuery
	if opts.Normalizer != nil {
		name = opts.Normalizer.Normalize(rawQuery)
	}

	byName, err := reviews.Lookup(src, name)
	if err != nil {
		return Result{}, err
	}
	fetched := byName[name]

	classifier := opts.Classifier
	if classifier == nil {
		classifier = sentiment.NewClassifier()
	}
	_, food, service := classifier.Classify(name, fetched)

	scored, err := scoring.Aggregate(name, food, service)
	if err != nil {
		return Result{}, err
	}

	ratings := make([]types.RatedReview, len(food))
	for i := range food {
		ratings[i] = types.RatedReview{Food: food[i], Service: service[i]}
	}

	return Result{
		Restaurant: name,
		RawQuery:   rawQuery,
		Reviews:    fetched,
		Ratings:    ratings,
		Overall:    scored[name],
	}, nil
}
