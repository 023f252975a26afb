package deps

import (
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"cargo-docker-build.run/cmd/cargo-docker-build/generatecmd"
	"cargo-docker-build.run/cmd/cargo-docker-build/memberscmd"
	"cargo-docker-build.run/cmd/cargo-docker-build/versioncmd"
	internalcmd "cargo-docker-build.run/internal/cmd"
)

type RootSubCommandResult struct {
	dig.Out

	SubCommand *cobra.Command `group:"rootSubCommands"`
}

func ProvideGenerateCmd(generatorFactory generatecmd.GeneratorFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: generatecmd.NewCmd(
			generatorFactory,
		),
	}
}

func ProvideGeneratorFactory(f LogFactory) generatecmd.GeneratorFactory {
	return &defaultGeneratorFactory{
		logFactory: f,
	}
}

type defaultGeneratorFactory struct {
	logFactory LogFactory
}

func (f *defaultGeneratorFactory) Generator() generatecmd.Generator {
	return internalcmd.NewGenerate(
		internalcmd.WithLog{
			Log: f.logFactory.Logger(),
		},
	)
}

func ProvideMembersCmd(listerFactory memberscmd.ListerFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: memberscmd.NewCmd(
			listerFactory,
		),
	}
}

func ProvideListerFactory(f LogFactory) memberscmd.ListerFactory {
	return &defaultListerFactory{
		logFactory: f,
	}
}

type defaultListerFactory struct {
	logFactory LogFactory
}

func (f *defaultListerFactory) Lister() memberscmd.Lister {
	return internalcmd.NewMembers(
		internalcmd.WithLog{
			Log: f.logFactory.Logger(),
		},
	)
}

func ProvideVersionCmd() RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: versioncmd.NewCmd(),
	}
}
