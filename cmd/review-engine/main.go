// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the review-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/review-engine/internal/query"
	"github.com/pdiddy/review-engine/internal/reviews"
	"github.com/pdiddy/review-engine/internal/sentiment"
	"github.com/pdiddy/review-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the review-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "review-engine",
	Short: "Keyword-based restaurant review scoring",
	Long: `review-engine scores restaurants from their stored text reviews. It
fetches all reviews for a restaurant from a local data source, rates each
review's food and service sentiment against a fixed keyword table, and
aggregates the ratings into one overall score on a 0-10 scale.

Each pipeline stage is a subcommand: normalize, fetch, classify, and
score. score runs the whole pipeline.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./review-engine.yaml or ~/.config/review-engine/config.yaml)")
	rootCmd.PersistentFlags().String("source", "", "review data source path")
	rootCmd.PersistentFlags().String("backend", "", "source backend: file or sqlite")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("review-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "review-engine"))
		}
	}

	viper.SetEnvPrefix("REVIEW_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("source.path", "restaurant-data.txt")
	viper.SetDefault("source.backend", string(types.BackendFile))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the pipeline configuration from viper, with the
// shared source flags taking precedence.
func loadConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Source: types.SourceConfig{
			Backend: types.SourceBackend(viper.GetString("source.backend")),
			Path:    viper.GetString("source.path"),
		},
		Classifier: types.ClassifierConfig{
			TierFile: viper.GetString("classifier.tier_file"),
		},
		Query: types.QueryConfig{
			AliasFile: viper.GetString("query.alias_file"),
		},
	}

	if path, _ := cmd.Flags().GetString("source"); path != "" {
		cfg.Source.Path = path
	}
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Source.Backend = types.SourceBackend(backend)
	}
	return cfg
}

// openSource resolves the review data source for cmd.
func openSource(cmd *cobra.Command) (reviews.Source, error) {
	return reviews.Open(loadConfig(cmd).Source)
}

// newNormalizer builds the query normalizer, appending aliases from the
// configured alias file.
func newNormalizer(cfg types.QueryConfig) (*query.Normalizer, error) {
	if cfg.AliasFile != "" {
		return query.LoadAliases(cfg.AliasFile)
	}
	return query.NewNormalizer(), nil
}

// newClassifier builds the sentiment classifier, replacing the keyword
// table from the configured tier file.
func newClassifier(cfg types.ClassifierConfig) (*sentiment.Classifier, error) {
	if cfg.TierFile != "" {
		return sentiment.LoadTiers(cfg.TierFile)
	}
	return sentiment.NewClassifier(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
