package workspace

import (
	"io/fs"

	"github.com/BurntSushi/toml"
)

type workspaceManifest struct {
	Workspace struct {
		Members []string `toml:"members"`
		Exclude []string `toml:"exclude"`
	} `toml:"workspace"`
}

type packageManifest struct {
	Package struct {
		Name        string   `toml:"name"`
		Version     string   `toml:"version"`
		Authors     []string `toml:"authors"`
		Description string   `toml:"description"`
		Repository  string   `toml:"repository"`
	} `toml:"package"`
}

// Keys every package manifest has to define.
var requiredPackageKeys = []string{
	"name", "version", "authors", "description", "repository",
}

// ReadWorkspace loads the workspace manifest at path.
//
// A manifest that can not be read fails with ErrManifestUnreadable. A
// manifest that is readable but is not a workspace (invalid TOML or no
// workspace.members) fails with ErrManifestInvalid or ErrMissingKey.
func ReadWorkspace(fsys fs.FS, path string) (*Workspace, error) {
	var m workspaceManifest

	md, err := decode(fsys, path, &m)
	if err != nil {
		return nil, err
	}

	if !md.IsDefined("workspace", "members") {
		return nil, ViolationError{
			Reason:  ViolationReasonMissingKey,
			Path:    path,
			Details: "workspace.members",
		}
	}

	return &Workspace{
		Path:    path,
		Members: m.Workspace.Members,
		Exclude: m.Workspace.Exclude,
	}, nil
}

// ReadPackage loads the package manifest at path.
//
// Every key of the [package] table used for image generation is required.
// No value is validated or normalized here.
func ReadPackage(fsys fs.FS, path string) (*Package, error) {
	var m packageManifest

	md, err := decode(fsys, path, &m)
	if err != nil {
		return nil, err
	}

	for _, key := range requiredPackageKeys {
		if !md.IsDefined("package", key) {
			return nil, ViolationError{
				Reason:  ViolationReasonMissingKey,
				Path:    path,
				Details: "package." + key,
			}
		}
	}

	return &Package{
		Path:        path,
		Name:        m.Package.Name,
		Version:     m.Package.Version,
		Authors:     m.Package.Authors,
		Description: m.Package.Description,
		Repository:  m.Package.Repository,
	}, nil
}

func decode(fsys fs.FS, path string, v any) (toml.MetaData, error) {
	// Manifests are only read from below the workspace root.
	if !fs.ValidPath(path) {
		return toml.MetaData{}, ViolationError{
			Reason:  ViolationReasonOutsideWorkspace,
			Path:    path,
			Details: "members must be relative paths below the workspace root",
		}
	}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return toml.MetaData{}, ViolationError{
			Reason: ViolationReasonManifestUnreadable,
			Path:   path,
			Err:    err,
		}
	}

	md, err := toml.Decode(string(data), v)
	if err != nil {
		return toml.MetaData{}, ViolationError{
			Reason: ViolationReasonManifestInvalid,
			Path:   path,
			Err:    err,
		}
	}

	return md, nil
}
