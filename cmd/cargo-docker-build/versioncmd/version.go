package versioncmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cargo-docker-build.run/internal/version"
)

func NewCmd() *cobra.Command {
	const (
		versionUse   = "version"
		versionShort = "Output build info of the application"
	)

	cmd := &cobra.Command{
		Use:   versionUse,
		Short: versionShort,
		Args:  cobra.NoArgs,
	}

	var opts options

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		info := version.Get()

		lines := [][]any{}
		if info.ApplicationVersion != "" {
			lines = append(lines, []any{"version", info.ApplicationVersion})
		}
		lines = append(lines, []any{"go", info.GoVersion})

		if opts.Embedded {
			lines = append(lines, []any{"path", info.Path}, []any{"mod", info.Main.Path, info.Main.Version})
			for _, dep := range info.Deps {
				lines = append(lines, []any{"dep", dep.Path, dep.Version})
			}
			for _, setting := range info.Settings {
				lines = append(lines, []any{"build", setting.Key, setting.Value})
			}
		}

		for _, l := range lines {
			if _, err := fmt.Fprintln(out, l...); err != nil {
				return fmt.Errorf("printing version: %w", err)
			}
		}

		return nil
	}

	return cmd
}

type options struct {
	Embedded bool
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.BoolVar(
		&o.Embedded,
		"embedded",
		o.Embedded,
		"Output embedded build information as well",
	)
}
