//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Demo builds the CLI, seeds sample data, and scores a sample query
// through the full pipeline.
func Demo() error {
	mg.Deps(Init, Build)

	cmd := exec.Command(filepath.Join(binDir, binName),
		"score", "mcdonalds", "--source", dataFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
