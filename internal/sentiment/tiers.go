// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sentiment

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// TierFile is the on-disk representation of a replacement keyword table.
type TierFile struct {
	Tiers []Tier `yaml:"tiers"`
}

// LoadTiers reads a YAML tier file and returns a classifier using it in
// place of the built-in table. The file must define each score 1 through
// 5 exactly once, with at least one keyword per tier. Tiers are sorted
// by score so the lower-tier-wins tie-break holds regardless of file
// order; keywords are lowercased for matching.
func LoadTiers(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tier file: %w", err)
	}

	var tf TierFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing tier file %s: %w", path, err)
	}
	if err := validateTiers(tf.Tiers); err != nil {
		return nil, fmt.Errorf("invalid tier file %s: %w", path, err)
	}

	loaded := make([]Tier, len(tf.Tiers))
	copy(loaded, tf.Tiers)
	sort.Slice(loaded, func(i, j int) bool { return loaded[i].Score < loaded[j].Score })
	for i := range loaded {
		for j, kw := range loaded[i].Keywords {
			loaded[i].Keywords[j] = strings.ToLower(kw)
		}
	}

	return &Classifier{tiers: loaded}, nil
}

func validateTiers(tiers []Tier) error {
	if len(tiers) != 5 {
		return fmt.Errorf("expected 5 tiers, got %d", len(tiers))
	}
	seen := make(map[int]bool)
	for _, tier := range tiers {
		if tier.Score < 1 || tier.Score > 5 {
			return fmt.Errorf("tier score %d outside 1..5", tier.Score)
		}
		if seen[tier.Score] {
			return fmt.Errorf("duplicate tier score %d", tier.Score)
		}
		seen[tier.Score] = true
		if len(tier.Keywords) == 0 {
			return fmt.Errorf("tier %d has no keywords", tier.Score)
		}
	}
	return nil
}
