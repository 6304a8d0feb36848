package vcs

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/vfs"
)

// Branch is the only branch the repository knows about.
const Branch = "main"

const stagedMark = "staged"

var (
	ErrNotRepository = errors.New("fatal: not a git repository")
	ErrPathspec      = errors.New("did not match any files")
)

// Commit is a message plus the staged set it captured.
type Commit struct {
	Message string
	Files   map[string]string
}

// Repository is a bookkeeping-only stand-in for git: no objects, no hashes.
type Repository struct {
	initialized bool
	staged      map[string]string
	order       []string // staged names in first-add order
	commits     []Commit
}

func New() *Repository {
	return &Repository{staged: make(map[string]string)}
}

func (r *Repository) Initialized() bool { return r.initialized }

// Init marks the repository as initialized. Calling it again is a no-op.
func (r *Repository) Init() {
	r.initialized = true
}

// Add stages name, which must be a child of dir.
func (r *Repository) Add(dir *vfs.Node, name string) error {
	if !r.initialized {
		return ErrNotRepository
	}
	if _, ok := dir.Child(name); !ok {
		return fmt.Errorf("fatal: pathspec '%s' %w", name, ErrPathspec)
	}
	if _, ok := r.staged[name]; !ok {
		r.order = append(r.order, name)
	}
	r.staged[name] = stagedMark
	return nil
}

// Commit moves the whole staged set into a new commit.
func (r *Repository) Commit(message string) (Commit, error) {
	if !r.initialized {
		return Commit{}, ErrNotRepository
	}
	c := Commit{Message: message, Files: r.staged}
	r.commits = append(r.commits, c)
	r.staged = make(map[string]string)
	r.order = nil
	return c, nil
}

// Staged returns staged file names in first-add order.
func (r *Repository) Staged() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Repository) Commits() []Commit {
	out := make([]Commit, len(r.commits))
	for i, c := range r.commits {
		out[i] = Commit{Message: c.Message, Files: maps.Clone(c.Files)}
	}
	return out
}

// StatusReport is what git status prints.
type StatusReport struct {
	Branch string
	Staged []string
}

func (s StatusReport) String() string {
	var sb strings.Builder
	staged := strings.Join(s.Staged, ", ")
	if staged == "" {
		staged = "none"
	}
	sb.WriteString(fmt.Sprintf("On branch %s\n", s.Branch))
	sb.WriteString(fmt.Sprintf("Staged files: %s\n", staged))
	return sb.String()
}

func (r *Repository) Status() (StatusReport, error) {
	if !r.initialized {
		return StatusReport{}, ErrNotRepository
	}
	return StatusReport{Branch: Branch, Staged: r.Staged()}, nil
}

// Log renders commits oldest first.
func (r *Repository) Log() (string, error) {
	if !r.initialized {
		return "", ErrNotRepository
	}
	commits := r.Commits()
	entries := make([]string, len(commits))
	for i, c := range commits {
		entries[i] = fmt.Sprintf("commit %d\n    %s", i+1, c.Message)
	}
	return strings.Join(entries, "\n\n"), nil
}
