package memberscmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cargo-docker-build.run/internal/cli"
	internalcmd "cargo-docker-build.run/internal/cmd"
	"cargo-docker-build.run/internal/workspace"
)

type ListerFactory interface {
	Lister() Lister
}

type Lister interface {
	ListMembers(ctx context.Context, opts ...internalcmd.ListMembersOption) (*workspace.Discovery, error)
}

func NewCmd(listerFactory ListerFactory) *cobra.Command {
	const (
		membersUse   = "members"
		membersShort = "list workspace members and whether they get an image"
	)

	cmd := &cobra.Command{
		Use:   membersUse,
		Short: membersShort,
		Args:  cobra.NoArgs,
	}

	opts := options{
		Dir:           ".",
		LibraryPrefix: workspace.DefaultLibraryPrefix,
	}

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if opts.Dir == "" {
			return fmt.Errorf("%w: workspace directory empty", internalcmd.ErrInvalidArgs)
		}

		discovery, err := listerFactory.Lister().ListMembers(
			cmd.Context(),
			internalcmd.WithDir(opts.Dir),
			internalcmd.WithDeduplicate(opts.Dedupe),
			internalcmd.WithLibraryPrefix(opts.LibraryPrefix),
		)
		if err != nil {
			return fmt.Errorf("listing members: %w", err)
		}

		printer := cli.NewPrinter(cli.WithOut{Out: cmd.OutOrStdout()})

		return printer.PrintTable(membersTable(discovery))
	}

	return cmd
}

func membersTable(discovery *workspace.Discovery) cli.Table {
	table := cli.Table{
		Headers: []string{"Member", "Manifest", "Eligible", "Reason"},
	}

	for _, m := range discovery.Members {
		reason := string(m.Excluded)
		if reason == "" {
			reason = "-"
		}
		table.AddRow(m.Path, m.Manifest, m.Eligible(), reason)
	}

	return table
}

type options struct {
	Dir           string
	LibraryPrefix string
	Dedupe        bool
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
		&o.LibraryPrefix,
		"library-prefix",
		o.LibraryPrefix,
		"Members whose path starts with this prefix are treated as libraries.",
	)
	flags.BoolVar(
		&o.Dedupe,
		"dedupe",
		o.Dedupe,
		"Mark repeated workspace members as duplicates.",
	)
}
