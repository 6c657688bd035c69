package source

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store persists fetched emoji bitmaps. Entry names use forward
// slashes ("apple/👍.png", "discord/123.png").
//
// The presence of an entry is the sole cache-validity signal, so Write
// must be atomic with respect to concurrent readers: a reader must
// never observe a partially written entry.
type Store interface {
	// Read returns the bytes of an entry. A missing entry is reported
	// with an error satisfying errors.Is(err, fs.ErrNotExist).
	Read(name string) ([]byte, error)

	// Write creates or replaces an entry atomically.
	Write(name string, data []byte) error

	// Exists reports whether an entry is present.
	Exists(name string) bool
}

// DirStore is a Store rooted at a filesystem directory, one file per
// entry. Writes go through a temp file in the destination directory
// followed by a rename, so concurrent readers and concurrent processes
// sharing the cache directory never see partial entries.
type DirStore struct {
	root string
}

// NewDirStore creates a DirStore at root, creating the directory if
// needed.
func NewDirStore(root string) (*DirStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("source: create cache dir %s: %w", root, err)
	}
	return &DirStore{root: root}, nil
}

// Root returns the root directory of the store.
func (s *DirStore) Root() string {
	return s.root
}

// Read implements Store.
func (s *DirStore) Read(name string) ([]byte, error) {
	return os.ReadFile(s.path(name))
}

// Write implements Store. The entry becomes visible only after the
// final rename.
func (s *DirStore) Write(name string, data []byte) error {
	path := s.path(name)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("source: create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".emojitext-*")
	if err != nil {
		return fmt.Errorf("source: create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("source: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("source: close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("source: rename %s: %w", name, err)
	}
	return nil
}

// Exists implements Store.
func (s *DirStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// path maps an entry name to a filesystem path under the root.
func (s *DirStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}
