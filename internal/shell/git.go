package shell

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/sandshell/internal/vcs"
)

type gitCommand struct{}

type gitSubcommand func(s *Session, args []string) (string, error)

var gitSubcommands = map[string]gitSubcommand{
	"add":    gitAdd,
	"commit": gitCommit,
	"status": gitStatus,
	"log":    gitLog,
}

func (gitCommand) Name() string {
	return "git"
}

func (gitCommand) Description() string {
	return `Track files in a toy repository

Usage:
  git init
  git add <file>
  git commit -m <message>
  git status
  git log`
}

func (gitCommand) ValidateArgs(args []string) error {
	return requireArgs(args, "git [command]")
}

// Execute checks the repository state before the subcommand name, so an
// unknown subcommand outside a repository reports the missing repository.
func (gitCommand) Execute(s *Session, args []string) (string, error) {
	sub, rest := args[0], args[1:]
	if sub == "init" {
		s.repo.Init()
		log.Info().Str("session", s.id).Msg("Repository initialized")
		return "Initialized empty Git repository", nil
	}
	if !s.repo.Initialized() {
		return "", vcs.ErrNotRepository
	}

	run, ok := gitSubcommands[sub]
	if !ok {
		return "", fmt.Errorf("git: '%s' is not a git command", sub)
	}
	return run(s, rest)
}

func gitAdd(s *Session, args []string) (string, error) {
	if err := requireArgs(args, "git add [file]"); err != nil {
		return "", err
	}
	file := args[0]
	dir, err := s.cwdDir("git add")
	if err != nil {
		return "", err
	}
	if err := s.repo.Add(dir, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added %s", file), nil
}

func gitCommit(s *Session, args []string) (string, error) {
	if err := requireArgs(args, "git commit -m [message]"); err != nil {
		return "", err
	}
	c, err := s.repo.Commit(arg.CommitMessage(args))
	if err != nil {
		return "", err
	}
	log.Debug().Str("session", s.id).Int("files", len(c.Files)).Msg("Committed staged files")
	return fmt.Sprintf("Committed with message: \"%s\"", c.Message), nil
}

func gitStatus(s *Session, args []string) (string, error) {
	status, err := s.repo.Status()
	if err != nil {
		return "", err
	}
	return status.String(), nil
}

func gitLog(s *Session, args []string) (string, error) {
	return s.repo.Log()
}

// GitSubcommands returns the subcommand names git understands, sorted.
func GitSubcommands() []string {
	names := []string{"init"}
	for name := range gitSubcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	registerCommand(gitCommand{})
}
