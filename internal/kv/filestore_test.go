package kv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if err := store.Set("timeline_events:dev@example.com", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, found, err := store.Get("timeline_events:dev@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("key not found after Set")
	}
	if string(data) != `{"a":1}` {
		t.Errorf("data = %s", data)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, found, err := store.Get("absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("found = true for missing key")
	}
}

func TestFileStoreDelete(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if err := store.Set("active_user", []byte(`"dev@example.com"`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete("active_user"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := store.Get("active_user"); found {
		t.Error("key still present after Delete")
	}

	// Deleting an absent key is not an error.
	if err := store.Delete("active_user"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	if err := store.Set("timeline_events:dev@example.com", []byte("x")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.ContainsAny(name, ":@/\\") {
			t.Errorf("unsanitized filename %q", name)
		}
		if !strings.HasSuffix(name, ".json") {
			t.Errorf("filename %q missing .json suffix", name)
		}
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if err := store.Set("registered_users", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := store.Set("registered_users", []byte("new")); err != nil {
		t.Fatal(err)
	}

	data, _, _ := store.Get("registered_users")
	if string(data) != "new" {
		t.Errorf("data = %s, want new", data)
	}
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir)
	if err := store.Set("key12", []byte("v")); err != nil {
		t.Fatalf("Set into nested dir: %v", err)
	}
}
