package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"

	"cargo-docker-build.run/internal/workspace"
)

func NewMembers(opts ...MembersOption) *Members {
	var cfg MembersConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Members{
		cfg: cfg,
	}
}

// Members resolves workspace members without reading their manifests.
type Members struct {
	cfg MembersConfig
}

type MembersConfig struct {
	Log logr.Logger
}

func (c *MembersConfig) Option(opts ...MembersOption) {
	for _, opt := range opts {
		opt.ConfigureMembers(c)
	}
}

func (c *MembersConfig) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
}

type MembersOption interface {
	ConfigureMembers(*MembersConfig)
}

// ListMembers returns every member of the workspace, excluded ones included.
func (m *Members) ListMembers(_ context.Context, opts ...ListMembersOption) (*workspace.Discovery, error) {
	var cfg ListMembersConfig

	cfg.Option(opts...)
	cfg.Default()

	m.cfg.Log.Info("resolving workspace members", "workspace", cfg.Dir)

	filter := workspace.NewFilter(
		workspace.WithLog{Log: m.cfg.Log},
		workspace.WithLibraryPrefix(cfg.LibraryPrefix),
		workspace.WithDeduplicate(cfg.Deduplicate),
	)

	discovery, err := filter.Discover(os.DirFS(cfg.Dir))
	if err != nil {
		return nil, fmt.Errorf("discovering workspace members: %w", err)
	}

	return discovery, nil
}

type ListMembersConfig struct {
	Dir           string
	Deduplicate   bool
	LibraryPrefix string
}

func (c *ListMembersConfig) Option(opts ...ListMembersOption) {
	for _, opt := range opts {
		opt.ConfigureListMembers(c)
	}
}

func (c *ListMembersConfig) Default() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.LibraryPrefix == "" {
		c.LibraryPrefix = workspace.DefaultLibraryPrefix
	}
}

type ListMembersOption interface {
	ConfigureListMembers(*ListMembersConfig)
}
