package shell

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/proc"
	"github.com/kuchuk-borom-debbarma/sandshell/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/sandshell/internal/vcs"
	"github.com/kuchuk-borom-debbarma/sandshell/internal/vfs"
)

// Result is what one command line produces. Clear asks the view to wipe
// what it has displayed so far.
type Result struct {
	Output string
	Clear  bool
}

// Session is all the state a single shell lives on. Throwing it away and
// calling New again is a full reset.
type Session struct {
	id      string
	fs      *vfs.FileSystem
	cwd     string
	procs   *proc.Table
	repo    *vcs.Repository
	history []string

	clearRequested bool
}

type Option func(*sessionOptions)

type sessionOptions struct {
	rng *rand.Rand
}

// WithRand fixes the source used for cosmetic CPU values.
func WithRand(rng *rand.Rand) Option {
	return func(o *sessionOptions) {
		o.rng = rng
	}
}

func New(opts ...Option) *Session {
	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}
	s := &Session{
		id:    uuid.NewString(),
		fs:    vfs.New(),
		cwd:   "/",
		procs: proc.NewTable(o.rng),
		repo:  vcs.New(),
	}
	log.Info().Str("session", s.id).Msg("Session started")
	return s
}

func (s *Session) ID() string { return s.id }

// Cwd returns the current directory.
func (s *Session) Cwd() string { return s.cwd }

// History returns every submitted line, oldest first.
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Children lists the names in the current directory, or nil when the cursor
// is not on a directory.
func (s *Session) Children() []string {
	dir, err := s.fs.ResolveDir(s.cwd, s.cwd)
	if err != nil {
		return nil
	}
	names, _ := s.fs.ListChildren(dir)
	return names
}

// Execute runs one raw command line. It never fails: every error becomes the
// returned text.
func (s *Session) Execute(line string) (res Result) {
	s.history = append(s.history, line)

	name, args := arg.Split(line)
	cmd, ok := GetCommand(name)
	if !ok {
		log.Debug().Str("session", s.id).Str("command", name).Msg("Unknown command")
		return Result{Output: fmt.Sprintf("%s: command not found", name)}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("session", s.id).Str("command", name).Interface("panic", r).Msg("Command panicked")
			res = Result{Output: fmt.Sprintf("%s: internal error", name)}
		}
	}()

	log.Debug().Str("session", s.id).Str("command", name).Strs("args", args).Msg("Executing command")
	if err := cmd.ValidateArgs(args); err != nil {
		return Result{Output: err.Error()}
	}

	s.clearRequested = false
	out, err := cmd.Execute(s, args)
	if err != nil {
		return Result{Output: err.Error()}
	}
	return Result{Output: out, Clear: s.clearRequested}
}

// cwdDir resolves the cursor to a directory for commands that need one.
func (s *Session) cwdDir(command string) (*vfs.Node, error) {
	dir, err := s.fs.ResolveDir(s.cwd, s.cwd)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: Not a directory", command, s.cwd)
	}
	return dir, nil
}
