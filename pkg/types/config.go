// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceBackend identifies the review source implementation.
type SourceBackend string

const (
	BackendFile   SourceBackend = "file"
	BackendSQLite SourceBackend = "sqlite"
)

// SourceConfig holds settings for the review source stage.
type SourceConfig struct {
	// Backend selects the source implementation: file or sqlite.
	Backend SourceBackend `json:"backend" yaml:"backend"`

	// Path locates the review data: a line-oriented text file for the
	// file backend, a database file for the sqlite backend.
	Path string `json:"path" yaml:"path"`
}

// ClassifierConfig holds settings for the sentiment classifier stage.
type ClassifierConfig struct {
	// TierFile optionally replaces the built-in keyword tier table with
	// a YAML tier file. Empty uses the built-in table.
	TierFile string `json:"tier_file,omitempty" yaml:"tier_file,omitempty"`
}

// QueryConfig holds settings for restaurant-name normalization.
type QueryConfig struct {
	// AliasFile optionally appends extra name aliases after the
	// built-in mapping. Empty uses built-ins only.
	AliasFile string `json:"alias_file,omitempty" yaml:"alias_file,omitempty"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Source     SourceConfig     `json:"source" yaml:"source"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`
	Query      QueryConfig      `json:"query" yaml:"query"`
}
