package workspace

import "path"

// ManifestFilename is the conventional name of workspace and package manifests.
const ManifestFilename = "Cargo.toml"

// DefaultLibraryPrefix marks members that are shared libraries rather than deployable binaries.
const DefaultLibraryPrefix = "lib"

// Workspace is the [workspace] table of the root manifest.
type Workspace struct {
	// Path of the manifest the workspace was read from.
	Path string
	// Members in declaration order, may contain glob patterns.
	Members []string
	// Exclude lists paths or patterns that never become members.
	Exclude []string
}

// Package is the identity metadata of a single deployable package.
type Package struct {
	// Path of the manifest the package was read from.
	Path        string
	Name        string
	Version     string
	Authors     []string
	Description string
	Repository  string
}

// ExclusionReason tells why a member does not take part in image generation.
type ExclusionReason string

const (
	ExclusionReasonLibrary   ExclusionReason = "library prefix"
	ExclusionReasonExcluded  ExclusionReason = "workspace exclude"
	ExclusionReasonDuplicate ExclusionReason = "duplicate member"
)

// Member is a single workspace member path.
type Member struct {
	// Path relative to the workspace root, "." for a single-package manifest.
	Path string
	// Manifest is the path of the member's package manifest.
	Manifest string
	// Excluded is empty when the member is eligible for image generation.
	Excluded ExclusionReason
}

// Eligible reports whether the member takes part in image generation.
func (m Member) Eligible() bool {
	return m.Excluded == ""
}

func newMember(p string) Member {
	return Member{
		Path:     p,
		Manifest: path.Join(p, ManifestFilename),
	}
}

// Discovery is the outcome of resolving the root manifest into members.
type Discovery struct {
	// Manifest is the path of the root manifest.
	Manifest string
	// Fallback is set when the root manifest is not a workspace and was
	// taken as the sole member.
	Fallback bool
	// Members in workspace order, including excluded ones.
	Members []Member
}

// Eligible returns the members that take part in image generation, in order.
func (d *Discovery) Eligible() []Member {
	var out []Member
	for _, m := range d.Members {
		if m.Eligible() {
			out = append(out, m)
		}
	}
	return out
}
