//go:build mage
// +build mage

package main

// This file can't be named ns_test.go because go then thinks this is test code.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Test mg.Namespace

// Runs unittests.
func (Test) Unit() {
	must(os.MkdirAll(cacheDir(), 0o755))

	report := filepath.Join(cacheDir(), "cov.out")
	testCmd := fmt.Sprintf("set -o pipefail; go test -coverprofile=%s -race -test.v ./internal/... ./cmd/...", report)

	// cgo needed to enable race detector -race
	must(sh.RunWithV(map[string]string{"CGO_ENABLED": "1"}, "bash", "-c", testCmd))
}

func (Test) GoModTidy() {
	must(sh.RunV("go", "mod", "tidy"))
}

func (Test) ValidateGitClean() {
	mg.Deps(Generate.All)

	o, err := sh.Output("git", "status", "--porcelain")
	must(err)

	if len(o) != 0 {
		panic("Repo is dirty! Probably because gofmt or make generate touched something...")
	}
}
