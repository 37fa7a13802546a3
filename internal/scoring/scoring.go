// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scoring aggregates per-review food and service ratings into a
// single overall score on a 0-10 scale.
package scoring

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors. These indicate mismatched or invalid classifier
// output from the caller and are surfaced, never silently corrected.
var (
	ErrLengthMismatch  = errors.New("food and service score lists must have the same length")
	ErrScoreOutOfRange = errors.New("all scores must be between 1 and 5")
)

// maxPairContribution is sqrt(5² · 5) = √125, the largest value one
// review pair can contribute to the sum; dividing by it normalizes a
// perfect restaurant toward 10. The food score is squared and the
// service score is not: food quality carries more weight per review.
var maxPairContribution = math.Sqrt(125)

// Aggregate combines index-aligned food and service scores into one
// overall score, formatted to exactly three decimal places and keyed by
// the restaurant name. Two empty lists yield "0.000" as a defined edge
// case, not an error.
func Aggregate(name string, food, service []int) (map[string]string, error) {
	if len(food) != len(service) {
		return nil, fmt.Errorf("%w: %d food, %d service",
			ErrLengthMismatch, len(food), len(service))
	}
	for _, s := range food {
		if s < 1 || s > 5 {
			return nil, fmt.Errorf("%w: food score %d", ErrScoreOutOfRange, s)
		}
	}
	for _, s := range service {
		if s < 1 || s > 5 {
			return nil, fmt.Errorf("%w: service score %d", ErrScoreOutOfRange, s)
		}
	}

	n := len(food)
	if n == 0 {
		return map[string]string{name: "0.000"}, nil
	}

	var sum float64
	for i := range food {
		f := float64(food[i])
		s := float64(service[i])
		sum += math.Sqrt(f * f * s)
	}

	overall := sum * (1 / (float64(n) * maxPairContribution)) * 10
	return map[string]string{name: fmt.Sprintf("%.3f", overall)}, nil
}
