// Command clicalc is an interactive calculator that runs in a terminal.
//
// With no flags it reads lines from standard input until quit or end of
// input. With -e, it evaluates the given lines in order and exits;
// assignments persist between them, so
//
//	clicalc -e 'a = 2' -e 'a^10'
//
// prints 1024.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is overridden at release time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		lines   []string
		noColor bool
	)
	cmd := &cobra.Command{
		Use:           "clicalc",
		Short:         "An interactive command line calculator",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			r := newRunner(cmd.InOrStdin(), cmd.OutOrStdout())
			if len(lines) > 0 {
				for _, l := range lines {
					if !r.runLine(l) {
						break
					}
				}
				return nil
			}
			return r.loop()
		},
	}
	cmd.Flags().StringArrayVarP(&lines, "eval", "e", nil, "evaluate a line and exit (repeatable; assignments persist between lines)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
