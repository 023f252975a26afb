package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"cargo-docker-build.run/internal/dockerfile"
	"cargo-docker-build.run/internal/workspace"
)

const (
	DefaultDockerfilePath = "Dockerfile"
	DefaultScriptPath     = "build_docker.sh"

	dockerfileMode os.FileMode = 0o644
	scriptMode     os.FileMode = 0o755
)

func NewGenerate(opts ...GenerateOption) *Generate {
	var cfg GenerateConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Generate{
		cfg: cfg,
	}
}

// Generate renders the Dockerfile and tagging script of a cargo workspace.
type Generate struct {
	cfg GenerateConfig
}

type GenerateConfig struct {
	Log logr.Logger
}

func (c *GenerateConfig) Option(opts ...GenerateOption) {
	for _, opt := range opts {
		opt.ConfigureGenerate(c)
	}
}

func (c *GenerateConfig) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
}

type GenerateOption interface {
	ConfigureGenerate(*GenerateConfig)
}

// GenerateResult describes a completed run.
type GenerateResult struct {
	Discovery *workspace.Discovery
	// Outcomes has one entry per eligible member, in member order.
	Outcomes []MemberOutcome
	// Paths the artifacts were written to.
	DockerfilePath string
	ScriptPath     string
}

// MemberOutcome is either a rendered image or the reason the member was rejected.
type MemberOutcome struct {
	Member workspace.Member
	Image  *dockerfile.Image
	Err    error
}

// Images returns the rendered images in artifact order.
func (r *GenerateResult) Images() []dockerfile.Image {
	var images []dockerfile.Image
	for _, o := range r.Outcomes {
		if o.Image != nil {
			images = append(images, *o.Image)
		}
	}
	return images
}

// Rejected returns the outcomes of members that were skipped.
func (r *GenerateResult) Rejected() []MemberOutcome {
	var rejected []MemberOutcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			rejected = append(rejected, o)
		}
	}
	return rejected
}

// GenerateFromWorkspace reads the workspace, renders both artifacts in
// memory and writes them, replacing previous content.
//
// An unreadable root manifest, an aborted run or a failed render leaves
// existing artifacts untouched.
func (g *Generate) GenerateFromWorkspace(ctx context.Context, opts ...GenerateFromWorkspaceOption) (*GenerateResult, error) {
	var cfg GenerateFromWorkspaceConfig

	cfg.Option(opts...)
	cfg.Default()

	log := g.cfg.Log.WithValues("workspace", cfg.Dir)
	fsys := os.DirFS(cfg.Dir)

	filter := workspace.NewFilter(
		workspace.WithLog{Log: log},
		workspace.WithLibraryPrefix(cfg.LibraryPrefix),
		workspace.WithDeduplicate(cfg.Deduplicate),
	)

	discovery, err := filter.Discover(fsys)
	if err != nil {
		return nil, fmt.Errorf("discovering workspace members: %w", err)
	}

	res := &GenerateResult{
		Discovery:      discovery,
		DockerfilePath: cfg.resolve(cfg.DockerfilePath),
		ScriptPath:     cfg.resolve(cfg.ScriptPath),
	}

	for _, member := range discovery.Eligible() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := g.loadImage(fsys, member)
		if err != nil {
			if cfg.Policy == FailurePolicyAbort {
				return nil, fmt.Errorf("%w: %w", ErrGenerationAborted, err)
			}

			log.Error(err, "skipping member", "member", member.Path, "path", member.Manifest)
			res.Outcomes = append(res.Outcomes, MemberOutcome{Member: member, Err: err})

			continue
		}

		if err := dockerfile.LintTag(img); err != nil {
			log.Info("image tag will be rejected by container tooling", "path", member.Manifest, "reason", err.Error())
		}

		res.Outcomes = append(res.Outcomes, MemberOutcome{Member: member, Image: &img})
	}

	artifacts, err := dockerfile.Assemble(res.Images())
	if err != nil {
		return nil, fmt.Errorf("assembling artifacts: %w", err)
	}

	log.Info("generating artifact", "path", res.DockerfilePath)
	if err := writeFile(res.DockerfilePath, artifacts.Dockerfile, dockerfileMode); err != nil {
		return nil, err
	}

	log.Info("generating artifact", "path", res.ScriptPath)
	if err := writeFile(res.ScriptPath, artifacts.Script, scriptMode); err != nil {
		return nil, err
	}

	return res, nil
}

func (g *Generate) loadImage(fsys fs.FS, member workspace.Member) (dockerfile.Image, error) {
	pkg, err := workspace.ReadPackage(fsys, member.Manifest)
	if err != nil {
		return dockerfile.Image{}, err
	}

	return dockerfile.Validate(pkg)
}

type GenerateFromWorkspaceConfig struct {
	// Dir is the workspace root holding the root manifest.
	Dir            string
	DockerfilePath string
	ScriptPath     string
	Policy         FailurePolicy
	Deduplicate    bool
	LibraryPrefix  string
}

func (c *GenerateFromWorkspaceConfig) Option(opts ...GenerateFromWorkspaceOption) {
	for _, opt := range opts {
		opt.ConfigureGenerateFromWorkspace(c)
	}
}

func (c *GenerateFromWorkspaceConfig) Default() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.DockerfilePath == "" {
		c.DockerfilePath = DefaultDockerfilePath
	}
	if c.ScriptPath == "" {
		c.ScriptPath = DefaultScriptPath
	}
	if c.Policy == "" {
		c.Policy = FailurePolicySkip
	}
	if c.LibraryPrefix == "" {
		c.LibraryPrefix = workspace.DefaultLibraryPrefix
	}
}

// Output paths are relative to the workspace root unless absolute.
func (c *GenerateFromWorkspaceConfig) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

type GenerateFromWorkspaceOption interface {
	ConfigureGenerateFromWorkspace(*GenerateFromWorkspaceConfig)
}
