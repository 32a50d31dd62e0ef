package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gopatterns/logging"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "patterns",
		Short: "Run the command, state and abstract-factory pattern demos",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLogger(logging.NewStdLoggerTo(cmd.ErrOrStderr(), "[patterns]", logging.DebugLevel))
			}
		},
		SilenceUsage: true,
		// No RunE - defaults to showing help when no subcommand is provided
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log invoker and dice transitions to stderr")

	root.AddCommand(newCommandCmd())
	root.AddCommand(newStateCmd())
	root.AddCommand(newFactoryCmd())
	root.AddCommand(newAllCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
