// Package blob stores document and resource content on the local
// filesystem, keyed by project id and file name. The relational store owns
// identity; paths here are derived from it and never enumerated.
package blob

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

var (
	// ErrMissing is returned when the requested path does not exist.
	ErrMissing = errors.New("file missing")

	// ErrInvalidName is returned when a user-supplied name is not safe to
	// use as a path segment.
	ErrInvalidName = errors.New("invalid file name")
)

// Names must start with an alphanumeric character so that dotfiles and
// relative segments ("..") can never reach the filesystem.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Store is a filesystem-backed blob store rooted at a single directory,
// with one subdirectory per project.
type Store struct {
	root string
}

// New creates a Store rooted at root, creating the directory if needed.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob root: %w", err)
	}
	return &Store{root: root}, nil
}

// Root returns the root directory of the store.
func (s *Store) Root() string {
	return s.root
}

// ValidateName reports whether name is safe to use as a path segment.
func ValidateName(name string) error {
	if !nameRegex.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// ProjectDir returns the directory holding a project's files.
func (s *Store) ProjectDir(projectID int64) string {
	return filepath.Join(s.root, strconv.FormatInt(projectID, 10))
}

// FilePath derives the on-disk path for a named file of a project. The
// derivation is deterministic: root/projectID/name.
func (s *Store) FilePath(projectID int64, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.ProjectDir(projectID), name), nil
}

// CreateProjectDir creates the directory for a new project.
func (s *Store) CreateProjectDir(projectID int64) error {
	if err := os.Mkdir(s.ProjectDir(projectID), 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	return nil
}

// RemoveProjectDir removes a project directory and everything under it.
// Removing a directory that does not exist is not an error.
func (s *Store) RemoveProjectDir(projectID int64) error {
	if err := os.RemoveAll(s.ProjectDir(projectID)); err != nil {
		return fmt.Errorf("failed to remove project directory: %w", err)
	}
	return nil
}

// Write stores content at path. When createIfMissing is false and the path
// does not exist, it fails with ErrMissing and writes nothing; this is how
// content updates are kept distinct from provisioning.
func (s *Store) Write(path string, content []byte, createIfMissing bool) error {
	if !createIfMissing {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return ErrMissing
			}
			return fmt.Errorf("failed to stat file: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Rename moves the content at oldPath to newPath, or fails with
// ErrMissing when nothing is stored at oldPath.
func (s *Store) Rename(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		if os.IsNotExist(err) {
			return ErrMissing
		}
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}

// Read returns the content stored at path, or ErrMissing.
func (s *Store) Read(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissing
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return content, nil
}
