package tui

import (
	"strings"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/shell"
	"github.com/kuchuk-borom-debbarma/sandshell/internal/util/arg"
)

// getSuggestions returns full input lines that complete the last token of input.
// The first token completes against command names, the token after "git"
// against git subcommands, and everything else against the names in the
// current directory.
func getSuggestions(s *shell.Session, input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	token, pos := arg.LastToken(input)
	head := input[:len(input)-len(token)]

	var candidates []string
	switch {
	case pos == 0:
		for _, name := range shell.Matches(token) {
			candidates = append(candidates, name+" ")
		}
	case pos == 1 && strings.Fields(input)[0] == "git":
		for _, name := range shell.GitSubcommands() {
			if strings.HasPrefix(name, token) {
				candidates = append(candidates, name+" ")
			}
		}
	default:
		for _, name := range s.Children() {
			if strings.HasPrefix(name, token) {
				candidates = append(candidates, name)
			}
		}
	}

	var suggestions []string
	for _, c := range candidates {
		suggestion := head + c
		if suggestion != input {
			suggestions = append(suggestions, suggestion)
		}
	}
	return suggestions
}
