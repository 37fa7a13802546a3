// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/review-engine/internal/reviews"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [restaurant]",
	Short: "Rate a restaurant's reviews for food and service sentiment",
	Long: `Classify fetches a restaurant's reviews and rates each one against
the keyword tier table, producing aligned food and service score lists.
Reviews that cannot be split into a food and a service segment are
dropped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	src, err := reviews.Open(cfg.Source)
	if err != nil {
		return err
	}
	classifier, err := newClassifier(cfg.Classifier)
	if err != nil {
		return err
	}

	name := strings.Join(args, " ")
	byName, err := reviews.Lookup(src, name)
	if err != nil {
		return err
	}

	_, food, service := classifier.Classify(name, byName[name])

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		out := struct {
			Restaurant    string `json:"restaurant"`
			FoodScores    []int  `json:"food_scores"`
			ServiceScores []int  `json:"service_scores"`
		}{name, food, service}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Restaurant name: %s\n", name)
	fmt.Printf("Food scores: %v\n", food)
	fmt.Printf("Customer service scores: %v\n", service)
	return nil
}

func init() {
	classifyCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(classifyCmd)
}
