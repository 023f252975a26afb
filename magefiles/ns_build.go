//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Builds the cli binary for the architecture of this machine.
func (Build) Binary() {
	mg.Deps(mg.F(Build.binary, nativeArch.OS, nativeArch.Arch))
}

// Builds the cli binary for every release architecture.
func (Build) ReleaseBinaries() {
	targets := []any{}
	for _, arch := range releaseArchitectures {
		targets = append(targets, mg.F(Build.binary, arch.OS, arch.Arch))
	}
	mg.Deps(targets...)
}

func (Build) binary(goos, goarch string) {
	env := map[string]string{
		"GOOS":   goos,
		"GOARCH": goarch,
	}
	if _, cgoOK := os.LookupEnv("CGO_ENABLED"); !cgoOK {
		env["CGO_ENABLED"] = "0"
	}

	ldflags := "-w -s " + fmt.Sprintf("-X '%s/internal/version.version=%s'", module, applicationVersion())
	dst := binaryDst(archTarget{goos, goarch})

	must(sh.RunWithV(env, "go", "build", "-ldflags", ldflags, "-o", dst, "./cmd/"+cliCmdName))
}
