// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sentiment converts free-text reviews into bounded integer
// ratings via keyword classification.
//
// Each review is split on '.' into segments; the first segment describes
// the food, the second the service. A segment's score comes from a fixed
// table of keyword tiers checked in ascending score order, so a segment
// containing keywords from two tiers always takes the lower score.
// Segments matching no tier score neutral (3).
//
// There is no language understanding beyond the substring lookup:
// negation ("not good") and intensifiers are not handled.
package sentiment

import "strings"

// Tier maps one score to its sentiment keywords.
type Tier struct {
	Score    int      `yaml:"score"`
	Keywords []string `yaml:"keywords"`
}

// defaultScore is assigned when a segment matches no tier keyword.
const defaultScore = 3

// defaultTiers is the built-in keyword table. It is an ordered slice,
// not a map: tiers are checked 1→5 and the first match wins.
var defaultTiers = []Tier{
	{Score: 1, Keywords: []string{"awful", "horrible", "disgusting"}},
	{Score: 2, Keywords: []string{"bad", "unpleasant", "offensive"}},
	{Score: 3, Keywords: []string{"average", "uninspiring", "forgettable"}},
	{Score: 4, Keywords: []string{"good", "enjoyable", "satisfying"}},
	{Score: 5, Keywords: []string{"awesome", "incredible", "amazing"}},
}

// Classifier rates review segments against a keyword tier table.
type Classifier struct {
	tiers []Tier
}

// NewClassifier returns a classifier using the built-in tier table.
func NewClassifier() *Classifier {
	return &Classifier{tiers: defaultTiers}
}

// Classify rates reviews with the built-in tier table.
func Classify(name string, reviews []string) (string, []int, []int) {
	return NewClassifier().Classify(name, reviews)
}

// Classify splits each review into a food segment and a service segment
// and rates both. Reviews with fewer than two segments are dropped; the
// returned slices are always equal length and index-aligned to each
// other, not to the input.
func (c *Classifier) Classify(name string, reviews []string) (string, []int, []int) {
	food := []int{}
	service := []int{}

	for _, review := range reviews {
		segments := strings.Split(review, ".")
		if len(segments) < 2 {
			continue
		}
		food = append(food, c.scoreSegment(strings.TrimSpace(segments[0])))
		service = append(service, c.scoreSegment(strings.TrimSpace(segments[1])))
	}

	return name, food, service
}

// scoreSegment returns the score of the first tier with a keyword
// appearing in segment, or defaultScore when none match.
func (c *Classifier) scoreSegment(segment string) int {
	lower := strings.ToLower(segment)
	for _, tier := range c.tiers {
		for _, kw := range tier.Keywords {
			if strings.Contains(lower, kw) {
				return tier.Score
			}
		}
	}
	return defaultScore
}
