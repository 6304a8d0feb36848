package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/shell"
)

// ExpiredNotice is shown when the session timer fires.
const ExpiredNotice = "Session time expired. Restarting..."

// entry is one block of scrollback.
type entry struct {
	prompt  string
	command string
	output  string
	notice  bool
}

type Options struct {
	User    string
	Host    string
	Timeout time.Duration
	// NewSession builds a fresh session at start and on every reset.
	NewSession func() *shell.Session
}

type Model struct {
	session          *shell.Session
	newSession       func() *shell.Session
	textInput        textinput.Model
	entries          []entry
	user             string
	host             string
	timeout          time.Duration
	epoch            int // bumped on reset so stale expiry ticks are ignored
	historyCursor    int // -1 when not browsing history
	suggestions      []string
	suggestionCursor int
	quitting         bool
	height           int
}

func InitialModel(opts Options) Model {
	newSession := opts.NewSession
	if newSession == nil {
		newSession = func() *shell.Session { return shell.New() }
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type a command"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return Model{
		session:          newSession(),
		newSession:       newSession,
		textInput:        ti,
		user:             opts.User,
		host:             opts.Host,
		timeout:          opts.Timeout,
		historyCursor:    -1,
		suggestionCursor: -1,
	}
}

func (m Model) prompt() string {
	return fmt.Sprintf("%s@%s:%s$", m.user, m.host, m.session.Cwd())
}

// Session exposes the live session, mostly for tests.
func (m Model) Session() *shell.Session {
	return m.session
}
