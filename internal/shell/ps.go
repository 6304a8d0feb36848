package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/proc"
)

type psCommand struct{}

func (psCommand) Name() string {
	return "ps"
}

func (psCommand) Description() string {
	return "List processes"
}

func (psCommand) ValidateArgs(args []string) error {
	return nil
}

func (psCommand) Execute(s *Session, args []string) (string, error) {
	procs := s.procs.List()
	rows := make([]string, len(procs))
	for i, p := range procs {
		rows[i] = p.String()
	}
	return strings.Join(rows, "\n"), nil
}

// parseID reads an optional sign and the leading decimal digits of raw and
// ignores the rest, so "2x" is 2 and "1.5" is 1. ok is false when raw does
// not start with a number.
func parseID(raw string) (id int, ok bool) {
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	id, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}

// signalProcess runs a status change against the id in raw and renders the
// outcome for command.
func signalProcess(command, raw, verb string, apply func(int) (proc.Process, error)) (string, error) {
	id, ok := parseID(raw)
	if !ok {
		return "", fmt.Errorf("%s: No such process with ID NaN", command)
	}
	p, err := apply(id)
	if errors.Is(err, proc.ErrNoSuchProcess) {
		return "", fmt.Errorf("%s: No such process with ID %d", command, id)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", command, err)
	}
	return fmt.Sprintf("Process %d (%s) %s", p.ID, p.Name, verb), nil
}

func init() {
	registerCommand(psCommand{})
}
