package walker

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Node is the classification of a relative path. It is one of File,
// Directory or Invalid.
type Node interface{ isNode() }

// File is a leaf locale document (a path ending in .json).
type File struct{ Path string }

// Directory is a source directory whose entries are processed in turn.
type Directory struct{ Path string }

// Invalid is a path that is neither a JSON file nor a directory.
type Invalid struct{ Path string }

func (File) isNode()      {}
func (Directory) isNode() {}
func (Invalid) isNode()   {}

// Source is the tree of source-locale documents.
type Source interface {
	// Classify resolves rel to exactly one Node. The empty path is the
	// source root.
	Classify(rel string) Node
	// List returns the names of the immediate entries of directory rel.
	List(rel string) ([]string, error)
	// Read returns the content of file rel.
	Read(rel string) ([]byte, error)
}

// FSSource reads source documents from an fs.FS.
//
// Entries that List reports as symbolic links are classified Invalid
// unless they end in .json, so a link back to an ancestor directory is
// never descended into.
type FSSource struct {
	FS fs.FS

	links map[string]bool
}

// NewDirSource returns a Source rooted at the directory root.
func NewDirSource(root string) *FSSource {
	return &FSSource{FS: os.DirFS(root)}
}

// Classify checks the .json suffix first, then whether rel is a directory.
// A directory named "x.json" is therefore a File, and reading it fails.
func (s *FSSource) Classify(rel string) Node {
	if strings.HasSuffix(rel, ".json") {
		return File{Path: rel}
	}
	if s.links[rel] {
		return Invalid{Path: rel}
	}
	info, err := fs.Stat(s.FS, fsPath(rel))
	if err == nil && info.IsDir() {
		return Directory{Path: rel}
	}
	return Invalid{Path: rel}
}

// List returns entry names sorted by filename.
func (s *FSSource) List(rel string) ([]string, error) {
	entries, err := fs.ReadDir(s.FS, fsPath(rel))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type()&fs.ModeSymlink != 0 {
			if s.links == nil {
				s.links = make(map[string]bool)
			}
			s.links[path.Join(rel, e.Name())] = true
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (s *FSSource) Read(rel string) ([]byte, error) {
	return fs.ReadFile(s.FS, fsPath(rel))
}

// fsPath maps a relative path to an fs.FS name; the root is ".".
func fsPath(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}

// cleanRel normalizes a user-supplied relative path to clean slash form.
// The root is the empty string.
func cleanRel(rel string) string {
	rel = path.Clean(filepath.ToSlash(rel))
	if rel == "." {
		return ""
	}
	return rel
}
