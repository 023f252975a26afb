package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cargo-docker-build.run/cmd/cargo-docker-build/deps"
	"cargo-docker-build.run/cmd/cargo-docker-build/rootcmd"
)

const (
	// ReturnCodeSuccess is passed to os.Exit() when no error is reported.
	ReturnCodeSuccess = 0
	// ReturnCodeError is passed to os.Exit() if a command report an error.
	ReturnCodeError = 1
)

// Run executes the command line given by args and returns the exit code.
func Run(ctx context.Context, inReader io.Reader, outWriter, errWriter io.Writer, args []string) int {
	streams := rootcmd.IOStreams{
		In:     inReader,
		Out:    outWriter,
		ErrOut: errWriter,
	}

	container, err := deps.Build(streams, args)
	if err != nil {
		fmt.Fprintln(errWriter, "Error: building dependencies:", err)

		return ReturnCodeError
	}

	if err := container.Invoke(func(cmd *cobra.Command) error {
		return cmd.ExecuteContext(ctx)
	}); err != nil {
		return ReturnCodeError
	}

	return ReturnCodeSuccess
}
