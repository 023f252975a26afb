package workspace

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/go-logr/logr"
	"github.com/gobwas/glob"
	"golang.org/x/exp/slices"
)

// Directories never searched when expanding glob members.
var skippedDirs = map[string]struct{}{
	"target":       {},
	"node_modules": {},
}

// NewFilter returns a Filter configured by the given options.
func NewFilter(opts ...FilterOption) *Filter {
	var cfg FilterConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Filter{cfg: cfg}
}

// Filter resolves workspace members and selects the ones eligible for image generation.
type Filter struct {
	cfg FilterConfig
}

type FilterConfig struct {
	Log logr.Logger
	// LibraryPrefix excludes members whose path starts with it.
	LibraryPrefix string
	// Deduplicate drops repeated member paths, keeping the first one.
	Deduplicate bool
}

func (c *FilterConfig) Option(opts ...FilterOption) {
	for _, opt := range opts {
		opt.ConfigureFilter(c)
	}
}

func (c *FilterConfig) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}

	if c.LibraryPrefix == "" {
		c.LibraryPrefix = DefaultLibraryPrefix
	}
}

type FilterOption interface {
	ConfigureFilter(*FilterConfig)
}

// Discover reads the root manifest of fsys and resolves it into members.
//
// A root manifest that can not be read is an error. A root manifest that is
// readable but not a workspace is taken as the sole member.
func (f *Filter) Discover(fsys fs.FS) (*Discovery, error) {
	ws, err := ReadWorkspace(fsys, ManifestFilename)
	switch {
	case errors.Is(err, ErrManifestUnreadable):
		return nil, err
	case err != nil:
		f.cfg.Log.V(1).Info("root manifest is not a workspace, using it as the only member",
			"path", ManifestFilename, "reason", err.Error())

		return &Discovery{
			Manifest: ManifestFilename,
			Fallback: true,
			Members:  []Member{newMember(".")},
		}, nil
	}

	members, err := f.Members(fsys, ws)
	if err != nil {
		return nil, err
	}

	return &Discovery{
		Manifest: ws.Path,
		Members:  members,
	}, nil
}

// Members expands the member list of ws and marks excluded members.
//
// Order follows the workspace declaration; glob members are replaced in
// place by their lexically sorted matches.
func (f *Filter) Members(fsys fs.FS, ws *Workspace) ([]Member, error) {
	excludes := make([]glob.Glob, 0, len(ws.Exclude))
	for _, pattern := range ws.Exclude {
		g, err := glob.Compile(path.Clean(pattern), '/')
		if err != nil {
			return nil, ViolationError{
				Reason: ViolationReasonInvalidPattern, Path: ws.Path, Details: pattern, Err: err,
			}
		}
		excludes = append(excludes, g)
	}

	var (
		members []Member
		seen    []string
	)
	for _, raw := range ws.Members {
		paths, err := f.expand(fsys, ws.Path, raw)
		if err != nil {
			return nil, err
		}

		for _, p := range paths {
			m := newMember(p)

			switch {
			case IsLibrary(p, f.cfg.LibraryPrefix):
				m.Excluded = ExclusionReasonLibrary
			case isExcluded(p, ws.Exclude, excludes):
				m.Excluded = ExclusionReasonExcluded
			case f.cfg.Deduplicate && slices.Contains(seen, p):
				m.Excluded = ExclusionReasonDuplicate
			}

			if m.Eligible() {
				seen = append(seen, p)
			}
			members = append(members, m)
		}
	}

	return members, nil
}

// IsLibrary reports whether the member path names a shared library.
func IsLibrary(memberPath, prefix string) bool {
	return strings.HasPrefix(memberPath, prefix)
}

func isExcluded(p string, raw []string, excludes []glob.Glob) bool {
	idx := slices.IndexFunc(excludes, func(g glob.Glob) bool {
		return g.Match(p)
	})
	if idx >= 0 {
		return true
	}

	// Plain exclude entries also cover everything below them.
	for _, e := range raw {
		if strings.HasPrefix(p, path.Clean(e)+"/") {
			return true
		}
	}

	return false
}

// Expands a single member entry. Plain paths are returned cleaned,
// patterns are matched against every directory holding a manifest.
func (f *Filter) expand(fsys fs.FS, manifest, member string) ([]string, error) {
	member = path.Clean(member)
	if !isPattern(member) {
		return []string{member}, nil
	}

	g, err := glob.Compile(member, '/')
	if err != nil {
		return nil, ViolationError{
			Reason: ViolationReasonInvalidPattern, Path: manifest, Details: member, Err: err,
		}
	}

	var matches []string
	err = fs.WalkDir(fsys, staticRoot(member), func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p == "." {
			// The workspace root is never its own member.
			return nil
		}
		if _, skip := skippedDirs[d.Name()]; skip || strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		if !g.Match(p) {
			return nil
		}
		if _, err := fs.Stat(fsys, path.Join(p, ManifestFilename)); err == nil {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, ViolationError{
			Reason: ViolationReasonInvalidPattern, Path: manifest, Details: member, Err: err,
		}
	}

	slices.Sort(matches)
	f.cfg.Log.V(1).Info("expanded member pattern", "pattern", member, "matches", matches)

	return matches, nil
}

func isPattern(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// Returns the longest leading directory of pattern without glob meta characters.
func staticRoot(pattern string) string {
	segments := strings.Split(pattern, "/")
	for i, s := range segments {
		if isPattern(s) {
			if i == 0 {
				return "."
			}
			return path.Join(segments[:i]...)
		}
	}
	return pattern
}
