//go:build mage
// +build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Generate mg.Namespace

func (Generate) All() {
	mg.Deps(Generate.Golden)
}

// Rewrites the golden Dockerfile and build script used by the renderer tests.
func (Generate) Golden() {
	must(sh.RunV("go", "test", "./internal/dockerfile/", "-run", "TestAssemble_Golden", "-update"))
}
