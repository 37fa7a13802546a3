//go:build mage

// Package main contains Mage build targets for review-engine developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	binDir   = "bin"
	binName  = "review-engine"
	cmdPkg   = "./cmd/review-engine"
	dataFile = "restaurant-data.txt"
)

// sampleData seeds a data file for trying the pipeline without real data.
var sampleData = strings.Join([]string{
	"McDonald's. The food was average. The service was bad.",
	"McDonald's. The fries were good. The staff were unpleasant.",
	"Subway. The sandwich was satisfying. The service was enjoyable.",
	"Chick-fil-A. The chicken was incredible. The service was awesome.",
}, "\n") + "\n"

// Init writes a sample review data file if none exists.
func Init() error {
	if _, err := os.Stat(dataFile); err == nil {
		fmt.Printf("%s already exists, leaving it alone\n", dataFile)
		return nil
	}
	if err := os.WriteFile(dataFile, []byte(sampleData), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dataFile, err)
	}
	fmt.Printf("Wrote sample data to %s\n", dataFile)
	return nil
}

// Build compiles the CLI binary into bin/ with the version stamped in.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}

	version := "dev"
	if out, err := exec.Command("git", "describe", "--tags", "--always").Output(); err == nil {
		version = strings.TrimSpace(string(out))
	}

	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build",
		"-ldflags", "-X main.version="+version,
		"-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Stats prints production and test line counts for the module.
func Stats() error {
	prod, test := 0, 0
	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		count := 0
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				count++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			test += count
		} else {
			prod += count
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", test)
	return nil
}
