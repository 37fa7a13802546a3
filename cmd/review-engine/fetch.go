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

var fetchCmd = &cobra.Command{
	Use:   "fetch [restaurant]",
	Short: "Fetch the stored reviews for a restaurant",
	Long: `Fetch looks up all reviews for a restaurant in the data source.
Matching is exact but case-insensitive; a restaurant with no stored
reviews prints an empty result rather than failing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	src, err := openSource(cmd)
	if err != nil {
		return err
	}

	name := strings.Join(args, " ")
	byName, err := reviews.Lookup(src, name)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(byName)
	}

	found := byName[name]
	if len(found) == 0 {
		fmt.Printf("No reviews found for %s.\n", name)
		return nil
	}

	fmt.Printf("Restaurant name: %s\n", name)
	fmt.Println("Reviews:")
	for _, r := range found {
		fmt.Printf("  - %s\n", r)
	}
	return nil
}

func init() {
	fetchCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(fetchCmd)
}
