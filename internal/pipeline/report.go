// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// FormatTable writes a human-readable report of res to w.
func FormatTable(res Result, w io.Writer) {
	fmt.Fprintf(w, "Restaurant name: %s\n", res.Restaurant)
	fmt.Fprintf(w, "Reviews fetched: %d\n", len(res.Reviews))
	fmt.Fprintf(w, "Reviews rated:   %d\n", len(res.Ratings))

	if len(res.Ratings) > 0 {
		fmt.Fprintf(w, "\n%-4s  %-4s  %s\n", "#", "Food", "Service")
		fmt.Fprintln(w, strings.Repeat("-", 21))
		for i, r := range res.Ratings {
			fmt.Fprintf(w, "%-4d  %-4d  %d\n", i+1, r.Food, r.Service)
		}
	}

	fmt.Fprintf(w, "\nThe %s restaurant overall score is: %s\n", res.Restaurant, res.Overall)
}

// FormatJSON writes res as indented JSON to w.
func FormatJSON(res Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// FormatYAML writes res as YAML to w.
func FormatYAML(res Result, w io.Writer) error {
	data, err := yaml.Marshal(&res)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	_, err = w.Write(data)
	return err
}
