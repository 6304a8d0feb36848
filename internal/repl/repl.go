package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/shell"
)

// ExpiredNotice is printed before a timed-out session is replaced.
const ExpiredNotice = "Session time expired. Restarting..."

type Options struct {
	User    string
	Host    string
	Timeout time.Duration
	NoColor bool
	// NewSession builds a fresh session at start and on every reset.
	NewSession func() *shell.Session
	// Now is the clock used for the session deadline.
	Now func() time.Time
}

// Run reads command lines from in until EOF or "exit" and writes prompts and
// results to out. The session deadline is checked before each line.
func Run(in io.Reader, out io.Writer, opts Options) error {
	newSession := opts.NewSession
	if newSession == nil {
		newSession = func() *shell.Session { return shell.New() }
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	prompt := color.New(color.FgGreen, color.Bold)
	if opts.NoColor {
		prompt.DisableColor()
	}

	session := newSession()
	deadline := now().Add(opts.Timeout)
	reader := bufio.NewReader(in)

	for {
		prompt.Fprintf(out, "%s@%s:%s$ ", opts.User, opts.Host, session.Cwd())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		command := strings.TrimSpace(line)

		if opts.Timeout > 0 && !now().Before(deadline) {
			log.Info().Str("session", session.ID()).Msg("Session expired, resetting")
			fmt.Fprintln(out, ExpiredNotice)
			session = newSession()
			deadline = now().Add(opts.Timeout)
			continue
		}

		if command == "exit" {
			return nil
		}

		res := session.Execute(command)
		if res.Clear {
			// ANSI clear screen and home cursor
			fmt.Fprint(out, "\033[H\033[2J")
		}
		if res.Output != "" {
			fmt.Fprintln(out, strings.TrimSuffix(res.Output, "\n"))
		}
	}
}

// Exec runs every line in one session and writes the non-empty results.
func Exec(lines []string, out io.Writer) {
	session := shell.New()
	for _, line := range lines {
		res := session.Execute(strings.TrimSpace(line))
		if res.Output != "" {
			fmt.Fprintln(out, strings.TrimSuffix(res.Output, "\n"))
		}
	}
}
