package rootcmd

import (
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/dig"

	"cargo-docker-build.run/internal/version"
)

type Params struct {
	dig.In

	Streams         IOStreams
	Args            []string
	SubCommands     []*cobra.Command `group:"rootSubCommands"`
	PersistentFlags []FlagAdder      `group:"rootPersistentFlags"`
}

type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// FlagAdder contributes flags shared by every subcommand.
type FlagAdder interface {
	AddFlags(flags *pflag.FlagSet)
}

func ProvideRootCmd(params Params) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cargo-docker-build",
		Short:        "Generate a Dockerfile and build script for a cargo workspace",
		Version:      version.Get().ApplicationVersion,
		SilenceUsage: true,
		Long: heredoc.Doc(`
			Generate a Dockerfile and build script for a cargo workspace.

			Cargo runs this binary as "cargo docker-build", which invokes the
			docker-build subcommand. Without a subcommand only this help is
			printed and no artifact is written.
		`),
	}
	cmd.SetIn(params.Streams.In)
	cmd.SetOut(params.Streams.Out)
	cmd.SetErr(params.Streams.ErrOut)
	cmd.SetArgs(params.Args)

	for _, fa := range params.PersistentFlags {
		fa.AddFlags(cmd.PersistentFlags())
	}

	for _, sub := range params.SubCommands {
		cmd.AddCommand(sub)
	}

	return cmd
}
