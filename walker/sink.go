package walker

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink is the target-locale tree translated documents are written to.
type Sink interface {
	// Exists reports whether anything is present at rel.
	Exists(rel string) (bool, error)
	// Write stores data at rel, creating parent directories.
	Write(rel string, data []byte) error
}

// DirSink writes into a directory on disk.
type DirSink struct {
	Root string
}

// NewDirSink returns a Sink rooted at root.
func NewDirSink(root string) *DirSink {
	return &DirSink{Root: root}
}

func (s *DirSink) path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

func (s *DirSink) Exists(rel string) (bool, error) {
	_, err := os.Stat(s.path(rel))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", s.path(rel), err)
}

// Write goes through a temporary file and a rename: a target that exists is
// always complete, since existence marks the file as done.
func (s *DirSink) Write(rel string, data []byte) error {
	target := s.path(rel)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".localetree-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("renaming to %s: %w", target, err)
	}
	return nil
}
