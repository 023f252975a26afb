package deps

import (
	"go.uber.org/dig"

	"cargo-docker-build.run/cmd/cargo-docker-build/rootcmd"
)

// Build returns a container able to provide the root command bound to the
// given streams and arguments.
func Build(streams rootcmd.IOStreams, args []string) (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(func() rootcmd.IOStreams { return streams }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() []string { return args }); err != nil {
		return nil, err
	}

	for _, c := range constructors() {
		if err := container.Provide(c); err != nil {
			return nil, err
		}
	}

	return container, nil
}

func constructors() []any {
	return []any{
		rootcmd.ProvideRootCmd,
		ProvideLogFactory,
		ProvideGenerateCmd,
		ProvideGeneratorFactory,
		ProvideMembersCmd,
		ProvideListerFactory,
		ProvideVersionCmd,
	}
}
