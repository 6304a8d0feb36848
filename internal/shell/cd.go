package shell

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/vfs"
)

type cdCommand struct{}

func (cdCommand) Name() string {
	return "cd"
}

func (cdCommand) Description() string {
	return `Change the current directory

Usage:
  cd <path>
  cd ..`
}

func (cdCommand) ValidateArgs(args []string) error {
	return requireArgs(args, "cd [directory]")
}

// Execute moves the cursor to any existing node, files included.
func (cdCommand) Execute(s *Session, args []string) (string, error) {
	target := args[0]
	if target == ".." {
		target = vfs.ParentOf(s.cwd)
	}

	if _, err := s.fs.Resolve(target, s.cwd); err != nil {
		return "", fmt.Errorf("cd: %s: No such file or directory", args[0])
	}
	s.cwd = vfs.Normalize(target, s.cwd)
	return "", nil
}

func init() {
	registerCommand(cdCommand{})
}
