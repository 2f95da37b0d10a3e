package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build).
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Exit codes.
// These match the expectations of shell scripts:
//
//	0 = selection made (printed to stdout)
//	1 = cancelled, no selection, or any error
const (
	exitSuccess     = 0
	exitNoSelection = 1
)

// run is the main entry point, returning an exit code. It is separated
// from main() to enable testing.
func run(args []string) int {
	var (
		initialQuery string
		height       int
		result       string
		picked       bool
		ran          bool
	)

	root := &cobra.Command{
		Use:   "selecta",
		Short: "interactive fuzzy text selection",
		Long: `selecta - interactive fuzzy text selection
Reads candidate lines from standard input, lets you narrow them down with
an incremental fuzzy query, and prints the chosen line to standard output.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ran = true

			var err error
			result, picked, err = pick(initialQuery, height)
			return err
		},
	}
	root.Flags().StringVarP(&initialQuery, "search", "s", "", "specify an initial search string")
	root.Flags().IntVarP(&height, "height", "n", 0, "number of result lines to show (default from config file)")
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "selecta: %v\n", err)
		if !ran {
			// Bad flags or arguments: show usage like the help text would.
			fmt.Fprintln(os.Stderr, root.UsageString())
		}
		return exitNoSelection
	}
	if !ran {
		// --help or --version short-circuited the run.
		return exitSuccess
	}
	if !picked {
		return exitNoSelection
	}
	fmt.Println(result)
	return exitSuccess
}
