package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Local variables for flag binding
var (
	configPath string
	logLevel   string
	logFile    string
	noColor    bool
	plain      bool
	timeout    string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandshell",
		Short: "A pretend Unix shell with an in-memory filesystem, process table and git",
		Long: `sandshell is a harmless sandbox shell. Nothing it does touches the real machine:
the filesystem, processes and git repository live in memory and vanish on exit.

Commands:
  pwd, ls, cd <dir>, mkdir <name>, touch <name>
  ps, start <name>, kill <id>, stop <id>
  git init|add|commit|status|log
  clear

Examples:
  # Interactive terminal UI
  sandshell

  # Line mode, e.g. for piping
  echo "ls" | sandshell --plain

  # Run a few lines and print the results
  sandshell exec "mkdir demo" "cd demo" "pwd"`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
		RunE: runInteractive,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file (default ./sandshell.toml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&plain, "plain", false, "Use line mode even on a terminal")
	cmd.Flags().StringVar(&timeout, "timeout", "", "Session lifetime before reset, e.g. 5m (0 disables)")

	cmd.AddCommand(newExecCmd())
	return cmd
}
