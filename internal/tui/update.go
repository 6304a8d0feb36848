package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// sessionExpiredMsg is delivered once per session after the timeout.
type sessionExpiredMsg struct {
	epoch int
}

func (m Model) expiryTick() tea.Cmd {
	if m.timeout <= 0 {
		return nil
	}
	epoch := m.epoch
	return tea.Tick(m.timeout, func(time.Time) tea.Msg {
		return sessionExpiredMsg{epoch: epoch}
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.expiryTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.textInput.Width = msg.Width - len(m.prompt()) - 4
		if m.textInput.Width < 10 {
			m.textInput.Width = 10
		}
		return m, nil

	case sessionExpiredMsg:
		if msg.epoch != m.epoch {
			return m, nil
		}
		log.Info().Str("session", m.session.ID()).Msg("Session expired, resetting")
		m = m.reset()
		m.entries = append(m.entries, entry{output: ExpiredNotice, notice: true})
		return m, m.expiryTick()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit(), nil

		case tea.KeyTab:
			if len(m.suggestions) > 0 {
				m.suggestionCursor = (m.suggestionCursor + 1) % len(m.suggestions)
				m.textInput.SetValue(m.suggestions[m.suggestionCursor])
				m.textInput.CursorEnd()
			}
			return m, nil

		case tea.KeyUp:
			return m.recall(-1), nil

		case tea.KeyDown:
			return m.recall(1), nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.suggestions = getSuggestions(m.session, m.textInput.Value())
		m.suggestionCursor = -1
		m.historyCursor = -1
	}
	return m, cmd
}

// submit runs the input line. The echoed prompt shows the directory after
// the command ran.
func (m Model) submit() Model {
	command := strings.TrimSpace(m.textInput.Value())
	res := m.session.Execute(command)
	if res.Clear {
		m.entries = nil
	}
	m.entries = append(m.entries, entry{prompt: m.prompt(), command: command, output: res.Output})

	m.textInput.SetValue("")
	m.suggestions = nil
	m.suggestionCursor = -1
	m.historyCursor = -1
	return m
}

// recall walks the session history. dir -1 is older, 1 is newer.
func (m Model) recall(dir int) Model {
	history := nonBlank(m.session.History())
	if len(history) == 0 {
		return m
	}

	cursor := m.historyCursor
	switch {
	case cursor < 0 && dir < 0:
		cursor = len(history) - 1
	case cursor < 0:
		return m
	default:
		cursor += dir
	}

	if cursor >= len(history) {
		m.historyCursor = -1
		m.textInput.SetValue("")
		return m
	}
	if cursor < 0 {
		cursor = 0
	}
	m.historyCursor = cursor
	m.textInput.SetValue(history[cursor])
	m.textInput.CursorEnd()
	return m
}

func (m Model) reset() Model {
	m.session = m.newSession()
	m.entries = nil
	m.epoch++
	m.historyCursor = -1
	m.suggestions = nil
	m.suggestionCursor = -1
	m.textInput.SetValue("")
	return m
}

func nonBlank(lines []string) []string {
	var out []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
