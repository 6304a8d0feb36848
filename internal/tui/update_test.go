package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/shell"
)

func newModel() Model {
	return InitialModel(Options{User: "user", Host: "ubuntu"})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func typeLine(t *testing.T, m Model, text string) Model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func enter(t *testing.T, m Model, text string) Model {
	t.Helper()
	return send(t, typeLine(t, m, text), tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmitEchoesPromptAfterCommand(t *testing.T) {
	m := newModel()
	m = enter(t, m, "cd home")
	m = enter(t, m, "pwd")

	require.Len(t, m.entries, 2)
	assert.Equal(t, "user@ubuntu:/home$", m.entries[0].prompt)
	assert.Equal(t, "cd home", m.entries[0].command)
	assert.Equal(t, "", m.entries[0].output)
	assert.Equal(t, "/home", m.entries[1].output)
	assert.Equal(t, "", m.textInput.Value())
	assert.Contains(t, m.View(), "/home")
}

func TestSubmitTrimsInput(t *testing.T) {
	m := newModel()
	m = enter(t, m, "   foo  ")
	assert.Equal(t, "foo: command not found", m.entries[0].output)
	assert.Equal(t, []string{"foo"}, m.session.History())
}

func TestClearWipesScrollback(t *testing.T) {
	m := newModel()
	m = enter(t, m, "ls")
	m = enter(t, m, "ps")
	m = enter(t, m, "clear")

	require.Len(t, m.entries, 1)
	assert.Equal(t, "clear", m.entries[0].command)
}

func TestSessionExpiryResets(t *testing.T) {
	m := newModel()
	m = enter(t, m, "mkdir a")
	m = enter(t, m, "cd a")
	old := m.session

	// ticks from an earlier epoch are ignored
	m = send(t, m, sessionExpiredMsg{epoch: m.epoch + 1})
	assert.Same(t, old, m.session)

	m = send(t, m, sessionExpiredMsg{epoch: m.epoch})
	assert.NotSame(t, old, m.session)
	assert.Equal(t, "/", m.session.Cwd())
	require.Len(t, m.entries, 1)
	assert.True(t, m.entries[0].notice)
	assert.Equal(t, ExpiredNotice, m.entries[0].output)
	assert.Equal(t, 1, m.epoch)
}

func TestExpiryTickDisabled(t *testing.T) {
	m := newModel()
	assert.Nil(t, m.expiryTick())

	m = InitialModel(Options{Timeout: 1})
	assert.NotNil(t, m.expiryTick())
}

func TestHistoryRecall(t *testing.T) {
	m := newModel()
	m = enter(t, m, "pwd")
	m = enter(t, m, "")
	m = enter(t, m, "ls")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "ls", m.textInput.Value())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "pwd", m.textInput.Value())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "pwd", m.textInput.Value())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "ls", m.textInput.Value())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", m.textInput.Value())
}

func TestTabCompletesCommand(t *testing.T) {
	m := newModel()
	m = typeLine(t, m, "mk")
	assert.Equal(t, []string{"mkdir "}, m.suggestions)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "mkdir ", m.textInput.Value())
}

func TestTabCyclesCandidates(t *testing.T) {
	m := newModel()
	m = typeLine(t, m, "c")
	assert.Equal(t, []string{"cd ", "clear "}, m.suggestions)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "cd ", m.textInput.Value())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "clear ", m.textInput.Value())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "cd ", m.textInput.Value())
}

func TestQuit(t *testing.T) {
	m := newModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).quitting)
	assert.Equal(t, "", next.(Model).View())
}

func TestGetSuggestions(t *testing.T) {
	s := shell.New()
	s.Execute("touch hosts")
	s.Execute("mkdir src")

	assert.Nil(t, getSuggestions(s, ""))
	assert.Equal(t, []string{"cd home", "cd hosts"}, getSuggestions(s, "cd h"))
	assert.Equal(t, []string{"git add ", "git init "}, filter(getSuggestions(s, "git "), "git a", "git i"))
	assert.Equal(t, []string{"git status "}, getSuggestions(s, "git st"))
	assert.Equal(t, []string{"git add src"}, getSuggestions(s, "git add s"))
	assert.Empty(t, getSuggestions(s, "cd src"))
}

func filter(in []string, prefixes ...string) []string {
	var out []string
	for _, s := range in {
		for _, p := range prefixes {
			if len(s) >= len(p) && s[:len(p)] == p {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
