package version

import (
	"runtime"
	"runtime/debug"
)

// Info contains build information supplied during compile time.
type Info struct {
	*debug.BuildInfo
	ApplicationVersion string `json:"version"`
}

// version gets filled by a linker argument and should contain the app version.
var version string

// Get version related embedded information.
//
// Without a version from the linker the main module version is used, which
// is set for binaries installed with `go install module@version`.
func Get() Info {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		buildInfo = &debug.BuildInfo{GoVersion: runtime.Version()}
	}

	appVersion := version
	if appVersion == "" && buildInfo.Main.Version != "(devel)" {
		appVersion = buildInfo.Main.Version
	}

	return Info{buildInfo, appVersion}
}
