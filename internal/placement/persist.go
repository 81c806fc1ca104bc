package placement

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const (
	// EntriesFileName is the fixed name of the persisted collection inside
	// the data directory.
	EntriesFileName = "placements.json"

	dirPerms  = 0o750
	filePerms = 0o600
)

// FileStore mirrors the full collection to a single JSON file. It never
// mutates the collection, only serializes what the store hands it.
type FileStore struct {
	path string
}

// NewFileStore creates a file store rooted at dataDir. The directory is
// created lazily on first save.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, EntriesFileName)}
}

// Path returns the absolute location of the entries file.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the persisted collection. A missing file, unreadable file, or
// a blob that does not parse as a list of entries all degrade to an empty
// collection: corruption must never stop the tool from starting. Entries
// with missing optional fields load with zero values.
func (f *FileStore) Load() []Entry {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil
	}

	var entries []Entry

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}

	return entries
}

// Save serializes the full collection and atomically replaces the entries
// file. Failures propagate; the in-memory store stays authoritative either
// way.
func (f *FileStore) Save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}

	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(f.path), dirPerms); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := atomic.WriteFile(f.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}

	// atomic.WriteFile doesn't set permissions for new files.
	if err := os.Chmod(f.path, filePerms); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", f.path, err)
	}

	return nil
}
