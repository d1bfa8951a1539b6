package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestPutGetDelete(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := s.Put("doc.v1", doc{Name: "a", Count: 2}); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got doc
	if err := s.Get("doc.v1", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "a" || got.Count != 2 {
		t.Fatalf("unexpected value: %+v", got)
	}

	if !s.Has("doc.v1") {
		t.Fatal("expected Has to report the key")
	}

	if err := s.Delete("doc.v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Get("doc.v1", &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetMissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	var got doc
	if err := s.Get("absent.v1", &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Deleting an absent key is not an error.
	if err := s.Delete("absent.v1"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestGetCorruptValue(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "doc.v1.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt: %v", err)
	}

	var got doc
	if err := s.Get("doc.v1", &got); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
