// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [query]",
	Short: "Rewrite informal restaurant names to canonical form",
	Long: `Normalize replaces a known misspelling or informal restaurant name
in the query with its canonical form. At most one alias is applied; a
query with no known variant is returned unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	normalizer, err := newNormalizer(loadConfig(cmd).Query)
	if err != nil {
		return err
	}
	fmt.Println(normalizer.Normalize(strings.Join(args, " ")))
	return nil
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
