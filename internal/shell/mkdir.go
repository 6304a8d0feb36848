package shell

import (
	"errors"
	"fmt"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/vfs"
)

type mkdirCommand struct{}

func (mkdirCommand) Name() string {
	return "mkdir"
}

func (mkdirCommand) Description() string {
	return "Create a directory in the current directory"
}

func (mkdirCommand) ValidateArgs(args []string) error {
	return requireArgs(args, "mkdir [directory]")
}

func (mkdirCommand) Execute(s *Session, args []string) (string, error) {
	name := args[0]
	dir, err := s.cwdDir("mkdir")
	if err != nil {
		return "", err
	}
	if err := s.fs.CreateDirectory(dir, name); err != nil {
		if errors.Is(err, vfs.ErrExists) {
			return "", fmt.Errorf("mkdir: %s: File exists", name)
		}
		return "", fmt.Errorf("mkdir: %w", err)
	}
	return "", nil
}

func init() {
	registerCommand(mkdirCommand{})
}
