//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// Constants that define build behaviour.
const (
	module     = "cargo-docker-build.run"
	cliCmdName = "cargo-docker-build"
)

type archTarget struct{ OS, Arch string }

var (
	nativeArch           = archTarget{runtime.GOOS, runtime.GOARCH}
	releaseArchitectures = []archTarget{
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "amd64"},
		{"darwin", "arm64"},
	}
)

// applicationVersion is taken from the VERSION env or "git describe".
func applicationVersion() string {
	if v := strings.TrimSpace(os.Getenv("VERSION")); len(v) != 0 {
		return v
	}

	out, err := exec.Command("git", "describe", "--tags").Output()
	if err != nil {
		panic(fmt.Errorf("git describe: %w", err))
	}

	return path.Base(strings.TrimSpace(string(out)))
}

func binaryDst(arch archTarget) string {
	if arch == nativeArch {
		return filepath.Join("bin", cliCmdName)
	}

	return filepath.Join("bin", fmt.Sprintf("%s_%s_%s", cliCmdName, arch.OS, arch.Arch))
}

func cacheDir() string {
	abs, err := filepath.Abs(".cache")
	must(err)

	return abs
}
