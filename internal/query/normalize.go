// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query corrects informal or misspelled restaurant names in a
// raw query string before lookup.
package query

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Alias maps one lowercase informal variant to a canonical restaurant
// name.
type Alias struct {
	Variant   string `yaml:"variant"`
	Canonical string `yaml:"canonical"`
}

// builtinAliases is the built-in variant table. It is an ordered slice,
// not a map: the first variant contained in the query wins, and only one
// alias is ever applied.
var builtinAliases = []Alias{
	{"mcdonalds", "McDonald's"},
	{"mcdonald", "McDonald's"},
	{"mc donalds", "McDonald's"},
	{"subway", "Subway"},
	{"in n out", "In-N-Out"},
	{"innout", "In-N-Out"},
	{"burger king", "Burger King"},
	{"burgerking", "Burger King"},
	{"kfc", "KFC"},
	{"kentucky fried chicken", "KFC"},
	{"wendys", "Wendy's"},
	{"taco bell", "Taco Bell"},
	{"tacobell", "Taco Bell"},
	{"chipotle", "Chipotle"},
	{"five guys", "Five Guys"},
	{"fiveguys", "Five Guys"},
	{"popeyes", "Popeyes"},
	{"chick fil a", "Chick-fil-A"},
	{"chickfila", "Chick-fil-A"},
}

// Normalizer rewrites known restaurant-name variants to canonical form.
type Normalizer struct {
	aliases []Alias
}

// NewNormalizer returns a normalizer with the built-in alias table.
func NewNormalizer() *Normalizer {
	return &Normalizer{aliases: builtinAliases}
}

// Normalize rewrites raw with the built-in alias table.
func Normalize(raw string) string {
	return NewNormalizer().Normalize(raw)
}

// Normalize returns raw with every occurrence of the first matching
// variant replaced by its canonical name. On a match the whole query is
// lowercased before the replacement; a miss returns raw untouched,
// original casing included.
func (n *Normalizer) Normalize(raw string) string {
	lower := strings.ToLower(raw)
	for _, a := range n.aliases {
		if strings.Contains(lower, a.Variant) {
			return strings.ReplaceAll(lower, a.Variant, a.Canonical)
		}
	}
	return raw
}

// AliasFile is the on-disk representation of extra name aliases.
type AliasFile struct {
	Aliases []Alias `yaml:"aliases"`
}

// LoadAliases reads a YAML alias file and returns a normalizer that
// checks the built-in table first and the loaded aliases after it, so
// built-ins keep priority. Variants are lowercased for matching.
func LoadAliases(path string) (*Normalizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alias file: %w", err)
	}

	var af AliasFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return nil, fmt.Errorf("parsing alias file %s: %w", path, err)
	}

	merged := make([]Alias, 0, len(builtinAliases)+len(af.Aliases))
	merged = append(merged, builtinAliases...)
	for _, a := range af.Aliases {
		if a.Variant == "" || a.Canonical == "" {
			return nil, fmt.Errorf("alias file %s: variant and canonical must both be set", path)
		}
		a.Variant = strings.ToLower(a.Variant)
		merged = append(merged, a)
	}

	return &Normalizer{aliases: merged}, nil
}
