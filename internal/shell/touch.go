package shell

import "fmt"

type touchCommand struct{}

func (touchCommand) Name() string {
	return "touch"
}

func (touchCommand) Description() string {
	return "Create an empty file, replacing any existing entry"
}

func (touchCommand) ValidateArgs(args []string) error {
	return requireArgs(args, "touch [file]")
}

func (touchCommand) Execute(s *Session, args []string) (string, error) {
	dir, err := s.cwdDir("touch")
	if err != nil {
		return "", err
	}
	if err := s.fs.CreateFile(dir, args[0]); err != nil {
		return "", fmt.Errorf("touch: %w", err)
	}
	return "", nil
}

func init() {
	registerCommand(touchCommand{})
}
