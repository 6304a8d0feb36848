package shell

import (
	"fmt"
	"sort"
	"strings"
)

type Command interface {
	// return the name the user types, such as mkdir
	Name() string
	// one-line description
	Description() string
	// Validate if the required args are present
	ValidateArgs(args []string) error
	// Execute the command against the session and return the text to show
	Execute(s *Session, args []string) (string, error)
}

// UsageError is returned when a required argument is missing.
type UsageError struct {
	Usage string
}

func (e UsageError) Error() string {
	return "Usage: " + e.Usage
}

func requireArgs(args []string, usage string) error {
	if len(args) == 0 {
		return UsageError{Usage: usage}
	}
	return nil
}

var commandRegistry = make(map[string]Command)

func registerCommand(command Command) {
	name := command.Name()
	if _, ok := commandRegistry[name]; ok {
		panic(fmt.Sprintf("shell: duplicate command %q", name))
	}
	commandRegistry[name] = command
}

func GetCommand(name string) (Command, bool) {
	cmd, ok := commandRegistry[name]
	return cmd, ok
}

// Names returns every registered command name, sorted.
func Names() []string {
	keys := make([]string, 0, len(commandRegistry))
	for k := range commandRegistry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Matches returns the sorted command names starting with prefix.
func Matches(prefix string) []string {
	var out []string
	for _, name := range Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
