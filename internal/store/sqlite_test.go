package store

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStoreGetSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rodizio.db")
	st, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	defer st.Close()

	_, ok, err := st.Get("state")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected missing key")
	}

	if err := st.Set("state", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := st.Get("state")
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if string(data) != "v1" {
		t.Errorf("got %q", data)
	}

	if err := st.Set("state", []byte("v2")); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}
	data, _, _ = st.Get("state")
	if string(data) != "v2" {
		t.Errorf("overwrite lost: %q", data)
	}
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rodizio.db")

	first, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	if err := first.Set("state", []byte("payload")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore (reopen): %v", err)
	}
	defer second.Close()

	data, ok, err := second.Get("state")
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if string(data) != "payload" {
		t.Errorf("got %q", data)
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	if _, err := OpenSQLiteStore("  "); err == nil {
		t.Fatal("expected an error for blank path")
	}
}
