package cmd

import (
	"github.com/go-logr/logr"
)

type WithLog struct{ Log logr.Logger }

func (w WithLog) ConfigureGenerate(c *GenerateConfig) {
	c.Log = w.Log
}

func (w WithLog) ConfigureMembers(c *MembersConfig) {
	c.Log = w.Log
}

type WithDir string

func (w WithDir) ConfigureGenerateFromWorkspace(c *GenerateFromWorkspaceConfig) {
	c.Dir = string(w)
}

func (w WithDir) ConfigureListMembers(c *ListMembersConfig) {
	c.Dir = string(w)
}

type WithDockerfilePath string

func (w WithDockerfilePath) ConfigureGenerateFromWorkspace(c *GenerateFromWorkspaceConfig) {
	c.DockerfilePath = string(w)
}

type WithScriptPath string

func (w WithScriptPath) ConfigureGenerateFromWorkspace(c *GenerateFromWorkspaceConfig) {
	c.ScriptPath = string(w)
}

type WithFailurePolicy FailurePolicy

func (w WithFailurePolicy) ConfigureGenerateFromWorkspace(c *GenerateFromWorkspaceConfig) {
	c.Policy = FailurePolicy(w)
}

type WithDeduplicate bool

func (w WithDeduplicate) ConfigureGenerateFromWorkspace(c *GenerateFromWorkspaceConfig) {
	c.Deduplicate = bool(w)
}

func (w WithDeduplicate) ConfigureListMembers(c *ListMembersConfig) {
	c.Deduplicate = bool(w)
}

type WithLibraryPrefix string

func (w WithLibraryPrefix) ConfigureGenerateFromWorkspace(c *GenerateFromWorkspaceConfig) {
	c.LibraryPrefix = string(w)
}

func (w WithLibraryPrefix) ConfigureListMembers(c *ListMembersConfig) {
	c.LibraryPrefix = string(w)
}
