// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the domain and configuration types shared across
// pipeline stages.
package types

// Review is a single record from the data source: the restaurant it
// refers to and the free-text review body.
type Review struct {
	Restaurant string `json:"restaurant" yaml:"restaurant"`
	Text       string `json:"text" yaml:"text"`
}

// RatedReview holds the two ratings extracted from one review. Both are
// integers in [1,5]. The aggregation formula weights Food more heavily
// than Service.
type RatedReview struct {
	Food    int `json:"food" yaml:"food"`
	Service int `json:"service" yaml:"service"`
}
