package vfs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("no such file or directory")
	ErrExists       = errors.New("file exists")
	ErrNotDirectory = errors.New("not a directory")
)

// Kind tells the two node variants apart.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

// Node is either a directory or a file. A node's name lives only in its
// parent's children table.
type Node struct {
	kind     Kind
	content  string
	children map[string]*Node
	order    []string // children names in creation order
}

func newDirectory() *Node {
	return &Node{kind: KindDirectory, children: make(map[string]*Node)}
}

func newFile(content string) *Node {
	return &Node{kind: KindFile, content: content}
}

func (n *Node) IsDir() bool { return n.kind == KindDirectory }

// Child returns the named child of a directory.
func (n *Node) Child(name string) (*Node, bool) {
	if !n.IsDir() {
		return nil, false
	}
	child, ok := n.children[name]
	return child, ok
}

// FileSystem owns the directory tree rooted at "/".
type FileSystem struct {
	root *Node
}

// New returns a filesystem seeded with /home.
func New() *FileSystem {
	fs := &FileSystem{root: newDirectory()}
	_ = fs.CreateDirectory(fs.root, "home")
	return fs
}

func (fs *FileSystem) Root() *Node { return fs.root }

// Resolve normalizes path against cwd and walks the tree from the root.
// A file met before the last segment ends the walk with ErrNotFound.
func (fs *FileSystem) Resolve(path, cwd string) (*Node, error) {
	current := fs.root
	for _, part := range segments(Normalize(path, cwd)) {
		if !current.IsDir() {
			return nil, ErrNotFound
		}
		child, ok := current.children[part]
		if !ok {
			return nil, ErrNotFound
		}
		current = child
	}
	return current, nil
}

// ResolveDir is Resolve restricted to directory targets.
func (fs *FileSystem) ResolveDir(path, cwd string) (*Node, error) {
	node, err := fs.Resolve(path, cwd)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, ErrNotDirectory
	}
	return node, nil
}

// ListChildren returns child names in the order they were first created.
func (fs *FileSystem) ListChildren(dir *Node) ([]string, error) {
	if !dir.IsDir() {
		return nil, ErrNotDirectory
	}
	names := make([]string, len(dir.order))
	copy(names, dir.order)
	return names, nil
}

// CreateDirectory adds an empty directory. Any existing child with the same
// name, directory or file, is a collision.
func (fs *FileSystem) CreateDirectory(parent *Node, name string) error {
	if !parent.IsDir() {
		return ErrNotDirectory
	}
	if _, ok := parent.children[name]; ok {
		return fmt.Errorf("%s: %w", name, ErrExists)
	}
	parent.put(name, newDirectory())
	return nil
}

// CreateFile sets name to an empty file, replacing whatever was there.
func (fs *FileSystem) CreateFile(parent *Node, name string) error {
	if !parent.IsDir() {
		return ErrNotDirectory
	}
	parent.put(name, newFile(""))
	return nil
}

func (n *Node) put(name string, child *Node) {
	if _, ok := n.children[name]; !ok {
		n.order = append(n.order, name)
	}
	n.children[name] = child
}
