package adapter

import (
	"io"
	"os"
	"path/filepath"

	m "apidiff.dev/pkg/apidiff/internal/model"
)

// WorkspaceFS abstracts the destination-tree filesystem operations so the
// domain layer can be tested without touching the disk.
type WorkspaceFS interface {
	// MakeDir creates the directory and any missing parents.
	MakeDir(path m.Path) error

	// WriteFile writes content to path, creating missing parent directories
	// and overwriting any pre-existing file.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// OpenLog opens the shared log file for appending, creating it and its
	// parent directories as necessary.
	OpenLog(path m.Path) (io.WriteCloser, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalWorkspaceFS is the concrete WorkspaceFS over the local filesystem.
type LocalWorkspaceFS struct{}

// NewLocalWorkspaceFS constructs a LocalWorkspaceFS.
func NewLocalWorkspaceFS() *LocalWorkspaceFS {
	return &LocalWorkspaceFS{}
}

// MakeDir creates the directory and any missing parents.
func (f *LocalWorkspaceFS) MakeDir(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// WriteFile writes content to path, creating parent directories first.
func (f *LocalWorkspaceFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// OpenLog opens path in append mode, creating it if missing.
func (f *LocalWorkspaceFS) OpenLog(path m.Path) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return nil, err
	}

	// #nosec G304 - log path is derived from the configured output tree
	return os.OpenFile(string(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
}

// JoinPath joins path elements into a single path.
func (f *LocalWorkspaceFS) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
