package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/config"
	"github.com/kuchuk-borom-debbarma/sandshell/internal/logging"
	"github.com/kuchuk-borom-debbarma/sandshell/internal/repl"
	"github.com/kuchuk-borom-debbarma/sandshell/internal/tui"
)

// loadConfig applies command-line flags on top of file and env config and
// installs the logger.
func loadConfig(console bool) (*config.Config, io.Closer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --timeout: %w", err)
		}
		cfg.Session.Timeout = d
	}

	closer, err := logging.Setup(cfg.Log.Level, cfg.Log.File, console)
	if err != nil {
		return nil, nil, err
	}
	return cfg, closer, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	useTUI := !plain && term.IsTerminal(int(os.Stdin.Fd()))

	// stderr logging would draw over the TUI
	cfg, closer, err := loadConfig(!useTUI)
	if err != nil {
		return err
	}
	defer closer.Close()

	if !useTUI {
		return repl.Run(os.Stdin, os.Stdout, repl.Options{
			User:    cfg.Prompt.User,
			Host:    cfg.Prompt.Host,
			Timeout: cfg.Session.Timeout,
			NoColor: noColor,
		})
	}

	log.Debug().Msg("Starting terminal UI")
	p := tea.NewProgram(tui.InitialModel(tui.Options{
		User:    cfg.Prompt.User,
		Host:    cfg.Prompt.Host,
		Timeout: cfg.Session.Timeout,
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <line>...",
		Short: "Run command lines in one fresh session and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, closer, err := loadConfig(true)
			if err != nil {
				return err
			}
			defer closer.Close()

			repl.Exec(args, cmd.OutOrStdout())
			return nil
		},
	}
}
