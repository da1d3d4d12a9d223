package khata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirStoreMissingKey(t *testing.T) {
	s, err := OpenDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	data, err := s.Read("customers")
	if err != nil {
		t.Fatal(err)
	}
	if data != nil {
		t.Errorf("got %q, want nil", data)
	}
}

func TestDirStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenDirStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	err = s.Update(func(w Putter) error {
		if err := w.Put("customers", []byte("first\n")); err != nil {
			return err
		}
		return w.Put("products", []byte("second\n"))
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Read("customers")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "first\n" {
		t.Errorf("Read(customers) = %q", got)
	}

	// one file per collection, no leftover temp files
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var found []string
	for _, e := range entries {
		found = append(found, e.Name())
	}
	if len(found) != 2 {
		t.Errorf("dir = %v", found)
	}
	if _, err := os.Stat(filepath.Join(dir, "customers.jsonl")); err != nil {
		t.Error(err)
	}
}

func TestDirStoreUpdateError(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenDirStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	failure := os.ErrInvalid
	err = s.Update(func(w Putter) error {
		w.Put("customers", []byte("doomed\n"))
		return failure
	})
	if err != failure {
		t.Fatalf("Update() = %v, want %v", err, failure)
	}

	// nothing reaches disk when fn fails
	if data, _ := s.Read("customers"); data != nil {
		t.Errorf("Read(customers) = %q, want nil", data)
	}
}
