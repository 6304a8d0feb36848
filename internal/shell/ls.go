package shell

import "strings"

type lsCommand struct{}

func (lsCommand) Name() string {
	return "ls"
}

func (lsCommand) Description() string {
	return "List the current directory"
}

func (lsCommand) ValidateArgs(args []string) error {
	return nil
}

func (lsCommand) Execute(s *Session, args []string) (string, error) {
	dir, err := s.cwdDir("ls")
	if err != nil {
		return "", err
	}
	names, err := s.fs.ListChildren(dir)
	if err != nil {
		return "", err
	}
	return strings.Join(names, " "), nil
}

func init() {
	registerCommand(lsCommand{})
}
