package khata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirStore persists each collection as a <key>.jsonl file under a data
// directory. This is the closest match to the original one-key-per-collection
// layout. Multi-key updates are written file by file: a crash between two
// files of one logical operation leaves the books partially updated, with no
// rollback. That window is accepted and documented; use the SQLite store when
// all-or-nothing writes matter.
type DirStore struct {
	dir string
}

// OpenDirStore opens (creating if needed) a data directory.
func OpenDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, StorageError{Op: "open", Err: err}
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, key+".jsonl")
}

// Read returns the payload of a collection file, or (nil, nil) when the file
// does not exist yet.
func (s *DirStore) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, StorageError{Op: "read", Key: key, Err: err}
	}
	return data, nil
}

// Update collects the puts issued by fn and then writes each file in turn.
// Each file is written to a temporary name and renamed, so a single
// collection is never left half-written; atomicity across collections is not
// provided.
func (s *DirStore) Update(fn func(w Putter) error) error {
	var puts dirPuts
	if err := fn(&puts); err != nil {
		return err
	}
	for _, p := range puts {
		tmp := s.path(p.key) + ".tmp"
		if err := os.WriteFile(tmp, p.data, 0644); err != nil {
			return StorageError{Op: "write", Key: p.key, Err: err}
		}
		if err := os.Rename(tmp, s.path(p.key)); err != nil {
			return StorageError{Op: "write", Key: p.key, Err: err}
		}
	}
	return nil
}

func (s *DirStore) Close() error { return nil }

type dirPut struct {
	key  string
	data []byte
}

type dirPuts []dirPut

func (p *dirPuts) Put(key string, data []byte) error {
	if key == "" {
		return fmt.Errorf("empty collection key")
	}
	*p = append(*p, dirPut{key: key, data: data})
	return nil
}
