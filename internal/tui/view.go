package tui

import (
	"strings"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var lines []string
	for _, e := range m.entries {
		if e.notice {
			lines = append(lines, noticeStyle.Render(e.output))
			continue
		}
		lines = append(lines, promptStyle.Render(e.prompt)+" "+e.command)
		if e.output != "" {
			for _, l := range strings.Split(strings.TrimSuffix(e.output, "\n"), "\n") {
				lines = append(lines, outputStyle.Render(l))
			}
		}
	}

	var tail []string
	tail = append(tail, promptStyle.Render(m.prompt())+" "+m.textInput.View())
	for i, s := range m.suggestions {
		if i == m.suggestionCursor {
			tail = append(tail, selectedSuggestionStyle.Render(s))
		} else {
			tail = append(tail, suggestionStyle.Render(s))
		}
	}
	tail = append(tail, helpStyle.Render("tab: complete • ↑/↓: history • esc: quit"))

	// keep the input line on screen
	if m.height > 0 {
		room := m.height - len(tail) - 1
		if room < 0 {
			room = 0
		}
		if len(lines) > room {
			lines = lines[len(lines)-room:]
		}
	}

	return appStyle.Render(strings.Join(append(lines, tail...), "\n"))
}
