package dockerfile

import "fmt"

const (
	// BuilderImage is the base image of the shared build stage.
	BuilderImage = "rust:slim"
	// RuntimeImage is the base image of every package section.
	RuntimeImage = "debian:bullseye-slim"
	// BuildDir is where the workspace is copied to inside the build stage.
	BuildDir = "/usr/src/myapp"
	// StageLabel names the shared build stage and labels it for pruning.
	StageLabel = "builder"
)

// Port is a port exposed by every package image.
type Port struct {
	Number   int
	Protocol string
}

func (p Port) String() string {
	return fmt.Sprintf("%d/%s", p.Number, p.Protocol)
}

// ExposedPorts is static and not derived from package metadata.
var ExposedPorts = []Port{
	{Number: 8080, Protocol: "tcp"},
	{Number: 8081, Protocol: "tcp"},
}
