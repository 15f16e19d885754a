// Package store provides the persistent blob store backing the board. The
// store is an opaque key/value surface: the board reads and writes the whole
// serialized state under a single key.
package store

import "fmt"

// StateKey is the key the board persists its state under.
const StateKey = "rodizio_state"

// BlobStore is a get/set-by-key blob store. Get reports whether the key was
// present; Set overwrites unconditionally (last write wins).
type BlobStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Close() error
}

// Open selects a backend by name. path is a directory for the file backend
// and a database file for the sqlite backend.
func Open(backend, path string) (BlobStore, error) {
	switch backend {
	case "file", "":
		s, err := NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		s, err := OpenSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
