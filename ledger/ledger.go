// Package ledger implements localetree.lock, a record of which target
// documents localetree wrote, from which source content and with which
// model. The ledger is informational: target existence alone decides
// whether a file is translated again.
package ledger

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the ledger file name, stored next to .localetree.yaml.
const FileName = "localetree.lock"

// Version is the ledger format version.
const Version = 1

// Entry describes one written target document.
type Entry struct {
	// Source is the MD5 of the source bytes the translation was made from.
	Source       string    `yaml:"source"`
	Provider     string    `yaml:"provider,omitempty"`
	Model        string    `yaml:"model,omitempty"`
	TranslatedAt time.Time `yaml:"translated_at"`
}

// Ledger is the localetree.lock structure. Files is keyed by the target
// path relative to the project root, in slash form.
type Ledger struct {
	Version int              `yaml:"version"`
	Files   map[string]Entry `yaml:"files"`

	mu   sync.Mutex
	path string
}

// Load reads the ledger from dir. A missing file yields an empty ledger.
func Load(dir string) (*Ledger, error) {
	path := filepath.Join(dir, FileName)
	l := &Ledger{
		Version: Version,
		Files:   make(map[string]Entry),
		path:    path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if l.Version > Version {
		return nil, fmt.Errorf("%s: unsupported ledger version %d", path, l.Version)
	}
	if l.Files == nil {
		l.Files = make(map[string]Entry)
	}
	return l, nil
}

// Save writes the ledger back to the file it was loaded from.
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path == "" {
		return fmt.Errorf("ledger path not set")
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", l.path, err)
	}
	return nil
}

// Hash computes the MD5 hex digest of data.
func Hash(data []byte) string {
	return fmt.Sprintf("%x", md5.Sum(data))
}

// Key builds the ledger key for a target document at rel under targetRoot,
// relative to projectRoot. Targets outside projectRoot keep their absolute
// path.
func Key(projectRoot, targetRoot, rel string) string {
	full := filepath.Join(targetRoot, filepath.FromSlash(rel))
	if r, err := filepath.Rel(projectRoot, full); err == nil && !isOutside(r) {
		return filepath.ToSlash(r)
	}
	return filepath.ToSlash(full)
}

func isOutside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Record stores an entry for key after a successful write.
func (l *Ledger) Record(key string, source []byte, providerID, model string, at time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Files[key] = Entry{
		Source:       Hash(source),
		Provider:     providerID,
		Model:        model,
		TranslatedAt: at.UTC().Truncate(time.Second),
	}
}

func (l *Ledger) lookup(key string) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.Files[key]
	return e, ok
}

// Keys returns the sorted ledger keys.
func (l *Ledger) Keys() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	keys := make([]string, 0, len(l.Files))
	for k := range l.Files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ---------------------------------------------------------------------------
// Status
// ---------------------------------------------------------------------------

// State is the status of one source document against its target.
type State string

const (
	// StatePending: no target yet; the next run translates it.
	StatePending State = "pending"
	// StateTranslated: target exists and the source is unchanged since.
	StateTranslated State = "translated"
	// StateStale: target exists but the source changed after translation.
	StateStale State = "stale"
	// StateUntracked: target exists without a ledger entry (written by hand
	// or by another tool).
	StateUntracked State = "untracked"
)

// Status classifies a source document. targetExists reports whether the
// target file is present.
func (l *Ledger) Status(key string, source []byte, targetExists bool) State {
	if !targetExists {
		return StatePending
	}
	e, ok := l.lookup(key)
	if !ok {
		return StateUntracked
	}
	if e.Source != Hash(source) {
		return StateStale
	}
	return StateTranslated
}
