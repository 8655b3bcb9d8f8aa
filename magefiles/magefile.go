//go:build mage

// Package main provides build targets for tally using Mage.
//
// Usage:
//
//	mage build   Compile the tally binary to bin/
//	mage test    Run all tests with the race detector
//	mage fmt     Format all Go files
//	mage vet     Run go vet
//	mage ci      Run the full pipeline and coverage gate
//	mage clean   Remove build artifacts
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/thenoetrevino/tally/internal/ci"
)

const (
	binaryName = "tally"
	binaryDir  = "bin"
)

// Build compiles the tally binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), ".")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Fmt formats all Go files.
func Fmt() error {
	return sh.RunV("gofmt", "-s", "-w", ".")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// CI runs format, vet, test and build concurrently, then checks coverage.
func CI(ctx context.Context) error {
	if code := ci.NewRunner(os.Stdout, ci.DefaultSteps()...).Run(ctx); code != 0 {
		return mg.Fatal(code, "ci failed")
	}
	if code := ci.NewRunner(os.Stdout, ci.CoverageStep()).Run(ctx); code != 0 {
		return mg.Fatal(code, fmt.Sprintf("coverage below %.0f%%", ci.CoverageThreshold))
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	for _, path := range []string{binaryDir, "coverage.out"} {
		if err := os.RemoveAll(path); err != nil {
			return err
		}
	}
	return nil
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), filepath.Join(binaryDir, binaryName))
}
