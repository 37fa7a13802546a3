// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/review-engine/internal/pipeline"
	"github.com/pdiddy/review-engine/internal/reviews"
)

var scoreCmd = &cobra.Command{
	Use:   "score [restaurant]",
	Short: "Compute the overall score for a restaurant",
	Long: `Score runs the full pipeline: normalize the restaurant name, fetch
its reviews, rate each review's food and service sentiment, and
aggregate the ratings into one overall score on a 0-10 scale.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	src, err := reviews.Open(cfg.Source)
	if err != nil {
		return err
	}
	classifier, err := newClassifier(cfg.Classifier)
	if err != nil {
		return err
	}

	opts := pipeline.Options{Classifier: classifier}

	noNormalize, _ := cmd.Flags().GetBool("no-normalize")
	if !noNormalize {
		normalizer, err := newNormalizer(cfg.Query)
		if err != nil {
			return err
		}
		opts.Normalizer = normalizer
	}

	res, err := pipeline.Run(src, strings.Join(args, " "), opts)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "":
		pipeline.FormatTable(res, os.Stdout)
		return nil
	case "json":
		return pipeline.FormatJSON(res, os.Stdout)
	case "yaml":
		return pipeline.FormatYAML(res, os.Stdout)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

func init() {
	scoreCmd.Flags().String("format", "table", "output format: table, json, or yaml")
	scoreCmd.Flags().Bool("no-normalize", false, "skip restaurant-name normalization")

	rootCmd.AddCommand(scoreCmd)
}
