package generatecmd

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cargo-docker-build.run/internal/cli"
	internalcmd "cargo-docker-build.run/internal/cmd"
	"cargo-docker-build.run/internal/workspace"
)

type GeneratorFactory interface {
	Generator() Generator
}

type Generator interface {
	GenerateFromWorkspace(
		ctx context.Context, opts ...internalcmd.GenerateFromWorkspaceOption,
	) (*internalcmd.GenerateResult, error)
}

func NewCmd(generatorFactory GeneratorFactory) *cobra.Command {
	const (
		generateUse   = "docker-build"
		generateShort = "generate a Dockerfile and build script for the workspace"
	)

	generateLong := heredoc.Doc(`
		Reads the cargo workspace manifest and writes a multi-stage Dockerfile
		with one runtime image per service package, plus a script that tags
		the built images and prunes the builder stage.

		Members whose path starts with the library prefix get no image.
		Members with an unreadable or incomplete manifest are skipped unless
		--strict is set, in which case nothing is written.
	`)

	cmd := &cobra.Command{
		Use:   generateUse,
		Short: generateShort,
		Long:  generateLong,
		Args:  cobra.NoArgs,
	}

	opts := options{
		Dir:           ".",
		Dockerfile:    internalcmd.DefaultDockerfilePath,
		Script:        internalcmd.DefaultScriptPath,
		LibraryPrefix: workspace.DefaultLibraryPrefix,
		Summary:       true,
	}

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if opts.Dir == "" {
			return fmt.Errorf("%w: workspace directory empty", internalcmd.ErrInvalidArgs)
		}
		if opts.Dockerfile == "" || opts.Script == "" {
			return fmt.Errorf("%w: output paths must not be empty", internalcmd.ErrInvalidArgs)
		}

		policy := internalcmd.FailurePolicySkip
		if opts.Strict {
			policy = internalcmd.FailurePolicyAbort
		}

		res, err := generatorFactory.Generator().GenerateFromWorkspace(
			cmd.Context(),
			internalcmd.WithDir(opts.Dir),
			internalcmd.WithDockerfilePath(opts.Dockerfile),
			internalcmd.WithScriptPath(opts.Script),
			internalcmd.WithFailurePolicy(policy),
			internalcmd.WithDeduplicate(opts.Dedupe),
			internalcmd.WithLibraryPrefix(opts.LibraryPrefix),
		)
		if err != nil {
			return fmt.Errorf("generating artifacts: %w", err)
		}

		if !opts.Summary {
			return nil
		}

		printer := cli.NewPrinter(
			cli.WithOut{Out: cmd.OutOrStdout()},
			cli.WithErr{Err: cmd.ErrOrStderr()},
		)

		return printSummary(printer, res)
	}

	return cmd
}

func printSummary(printer *cli.Printer, res *internalcmd.GenerateResult) error {
	if err := printer.PrintfOut("%s", res.Summary()); err != nil {
		return err
	}
	if err := printer.PrintfOut("wrote %s\nwrote %s\n", res.DockerfilePath, res.ScriptPath); err != nil {
		return err
	}

	if rejected := len(res.Rejected()); rejected > 0 {
		return printer.PrintfErr("%d member(s) skipped, rerun with --strict to fail instead\n", rejected)
	}

	return nil
}

type options struct {
	Dir           string
	Dockerfile    string
	Script        string
	LibraryPrefix string
	Strict        bool
	Dedupe        bool
	Summary       bool
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(
		&o.Dir,
		"dir",
		"C",
		o.Dir,
		"Workspace directory holding the root Cargo.toml.",
	)
	flags.StringVar(
		&o.Dockerfile,
		"dockerfile",
		o.Dockerfile,
		"Path of the generated Dockerfile, relative to the workspace directory.",
	)
	flags.StringVar(
		&o.Script,
		"script",
		o.Script,
		"Path of the generated build script, relative to the workspace directory.",
	)
	flags.StringVar(
		&o.LibraryPrefix,
		"library-prefix",
		o.LibraryPrefix,
		"Members whose path starts with this prefix are treated as libraries and get no image.",
	)
	flags.BoolVar(
		&o.Strict,
		"strict",
		o.Strict,
		"Fail on the first invalid member manifest instead of skipping it.",
	)
	flags.BoolVar(
		&o.Dedupe,
		"dedupe",
		o.Dedupe,
		"Drop repeated workspace members, keeping the first occurrence.",
	)
	flags.BoolVar(
		&o.Summary,
		"summary",
		o.Summary,
		"Print the generation summary.",
	)
}
