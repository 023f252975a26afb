package dockerfile

import (
	"fmt"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"

	"cargo-docker-build.run/internal/workspace"
)

// Image is a package that passed validation and can be rendered.
type Image struct {
	// Manifest is the path of the package manifest.
	Manifest    string
	Name        string
	Version     string
	Authors     []string
	Description string
	Repository  string
}

// Tag is the image tag shared by the Dockerfile label and the tag command.
func (i Image) Tag() string {
	return fmt.Sprintf("%s:v%s", i.Name, i.Version)
}

// Maintainer is the first author; further authors are not embedded.
func (i Image) Maintainer() string {
	return i.Authors[0]
}

// Validate checks that pkg is usable for rendering and returns its Image.
//
// At least one author is required. The description is trimmed, every other
// field is taken as-is, empty values included.
func Validate(pkg *workspace.Package) (Image, error) {
	if len(pkg.Authors) == 0 {
		return Image{}, workspace.ViolationError{
			Reason: workspace.ViolationReasonNoAuthors,
			Path:   pkg.Path,
		}
	}

	authors := make([]string, len(pkg.Authors))
	copy(authors, pkg.Authors)

	return Image{
		Manifest:    pkg.Path,
		Name:        pkg.Name,
		Version:     pkg.Version,
		Authors:     authors,
		Description: strings.TrimSpace(pkg.Description),
		Repository:  pkg.Repository,
	}, nil
}

// LintTag reports whether the image tag is a valid image reference.
// The result is advisory, an invalid tag is still rendered.
func LintTag(img Image) error {
	if _, err := name.NewTag(img.Tag()); err != nil {
		return fmt.Errorf("tag %q of %s is not a valid image reference: %w", img.Tag(), img.Manifest, err)
	}
	return nil
}
