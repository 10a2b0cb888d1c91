package main

import (
	"path/filepath"
	"testing"
)

func newTestPrefStore(t *testing.T) *prefStore {
	t.Helper()
	store, err := openPrefStoreAt(filepath.Join(t.TempDir(), "prefs.sqlite"))
	if err != nil {
		t.Fatalf("openPrefStoreAt: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPrefStoreIntRoundTrip(t *testing.T) {
	store := newTestPrefStore(t)

	if _, ok := store.GetInt(prefKeyItemsPerPage); ok {
		t.Fatal("fresh store should report the key absent")
	}

	store.SetInt(prefKeyItemsPerPage, 50)
	got, ok := store.GetInt(prefKeyItemsPerPage)
	if !ok || got != 50 {
		t.Fatalf("GetInt = (%d, %v), want (50, true)", got, ok)
	}

	store.SetInt(prefKeyItemsPerPage, 100)
	got, ok = store.GetInt(prefKeyItemsPerPage)
	if !ok || got != 100 {
		t.Fatalf("GetInt after overwrite = (%d, %v), want (100, true)", got, ok)
	}
}

// A stored value that does not parse as an integer is reported absent
// and left in place: the reader falls back to its default without
// destroying whatever wrote the odd value.
func TestPrefStoreMalformedIntIsAbsentNotDestroyed(t *testing.T) {
	store := newTestPrefStore(t)
	store.setString(prefKeyItemsPerPage, "abc")

	if _, ok := store.GetInt(prefKeyItemsPerPage); ok {
		t.Fatal("malformed int should be reported absent")
	}

	raw, ok := store.getString(prefKeyItemsPerPage)
	if !ok || raw != "abc" {
		t.Fatalf("raw value = (%q, %v), want (\"abc\", true)", raw, ok)
	}
}

func TestPrefStoreBoolEncoding(t *testing.T) {
	store := newTestPrefStore(t)

	store.SetBool(prefKeySidebarOpen, true)
	if raw, _ := store.getString(prefKeySidebarOpen); raw != "1" {
		t.Errorf("true stored as %q, want \"1\"", raw)
	}
	if got, ok := store.GetBool(prefKeySidebarOpen); !ok || !got {
		t.Errorf("GetBool = (%v, %v), want (true, true)", got, ok)
	}

	store.SetBool(prefKeySidebarOpen, false)
	if raw, _ := store.getString(prefKeySidebarOpen); raw != "0" {
		t.Errorf("false stored as %q, want \"0\"", raw)
	}
	if got, ok := store.GetBool(prefKeySidebarOpen); !ok || got {
		t.Errorf("GetBool = (%v, %v), want (false, true)", got, ok)
	}

	store.setString(prefKeySidebarOpen, "true")
	if _, ok := store.GetBool(prefKeySidebarOpen); ok {
		t.Error("non-canonical boolean text should be reported absent")
	}
}

func TestPrefStoreKeysAreIndependent(t *testing.T) {
	store := newTestPrefStore(t)
	store.SetInt(prefKeyItemsPerPage, 20)
	store.SetBool(prefKeySidebarOpen, true)

	if got, _ := store.GetInt(prefKeyItemsPerPage); got != 20 {
		t.Errorf("items per page = %d, want 20", got)
	}
	if got, _ := store.GetBool(prefKeySidebarOpen); !got {
		t.Error("sidebar flag lost after writing another key")
	}
}

func TestPrefStoreNilIsSafe(t *testing.T) {
	var store *prefStore
	if _, ok := store.GetInt(prefKeyItemsPerPage); ok {
		t.Error("nil store should report absence")
	}
	store.SetBool(prefKeySidebarOpen, true)
	if err := store.Close(); err != nil {
		t.Errorf("nil Close() = %v, want nil", err)
	}
}

func TestPrefStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.sqlite")

	store, err := openPrefStoreAt(path)
	if err != nil {
		t.Fatalf("openPrefStoreAt: %v", err)
	}
	store.SetInt(prefKeyItemsPerPage, 200)
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := openPrefStoreAt(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if got, ok := reopened.GetInt(prefKeyItemsPerPage); !ok || got != 200 {
		t.Fatalf("after reopen GetInt = (%d, %v), want (200, true)", got, ok)
	}
}
