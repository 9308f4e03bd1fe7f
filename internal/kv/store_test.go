package kv

import (
	"os"
	"path/filepath"
	"testing"
)

// storeFactories builds both store flavors against a temp directory so
// every test runs once per backend.
func storeFactories(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()
	return map[string]Store{
		"file":   NewFileStore(filepath.Join(dir, "fupan.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "fupan.db")),
	}
}

func TestInitAndRoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	for name, store := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			Set(store, KeyAnnualPlan, payload{Name: "plan", Count: 3})

			got, ok := Get[payload](store, KeyAnnualPlan)
			if !ok {
				t.Fatal("Get returned absent after Set")
			}
			if got.Name != "plan" || got.Count != 3 {
				t.Errorf("round trip mismatch: %+v", got)
			}
		})
	}
}

func TestInitTwiceFails(t *testing.T) {
	for name, store := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("first Init failed: %v", err)
			}
			store.Close()

			if err := store.Init(); err == nil {
				t.Error("second Init should fail on an existing file")
			}
		})
	}
}

func TestLoadWithoutInitFails(t *testing.T) {
	for name, store := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Load(); err == nil {
				t.Error("Load should fail before Init")
			}
		})
	}
}

func TestGetMissingKey(t *testing.T) {
	for name, store := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			if _, ok := Get[string](store, KeyDeepReview); ok {
				t.Error("Get on a missing key should report absent")
			}
		})
	}
}

func TestRemoveAndClear(t *testing.T) {
	for name, store := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			Set(store, KeyAnnualPlan, "a")
			Set(store, KeyDailyReview, "b")

			store.Remove(KeyAnnualPlan)
			if _, ok := Get[string](store, KeyAnnualPlan); ok {
				t.Error("removed key should be absent")
			}
			if _, ok := Get[string](store, KeyDailyReview); !ok {
				t.Error("Remove should not touch other keys")
			}

			store.Clear()
			if _, ok := Get[string](store, KeyDailyReview); ok {
				t.Error("Clear should drop every key")
			}
		})
	}
}

func TestMalformedValueReadsAsAbsent(t *testing.T) {
	for name, store := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			// A raw string is valid JSON but not an envelope with the
			// expected data shape underneath.
			store.Set(KeyAnnualPlan, "not an envelope")

			if _, ok := Get[map[string]string](store, KeyAnnualPlan); ok {
				t.Error("malformed stored value should read as absent")
			}
		})
	}
}

func TestVersionMismatchReadsAsAbsent(t *testing.T) {
	for name, store := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			store.Set(KeyAnnualPlan, envelope{Version: SchemaVersion + 1, Data: []byte(`"x"`)})

			if _, ok := Get[string](store, KeyAnnualPlan); ok {
				t.Error("value with a newer schema version should read as absent")
			}
		})
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fupan.json")

	store := NewFileStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Set(store, KeyDailyReview, []string{"2026-08-29"})
	store.Close()

	reopened := NewFileStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	dates, ok := Get[[]string](reopened, KeyDailyReview)
	if !ok || len(dates) != 1 || dates[0] != "2026-08-29" {
		t.Errorf("persisted value lost: %v (ok=%v)", dates, ok)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fupan.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Set(store, KeyDailyReview, []string{"2026-08-29"})
	store.Close()

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	dates, ok := Get[[]string](reopened, KeyDailyReview)
	if !ok || len(dates) != 1 || dates[0] != "2026-08-29" {
		t.Errorf("persisted value lost: %v (ok=%v)", dates, ok)
	}

	version, err := reopened.UserVersion()
	if err != nil {
		t.Fatalf("UserVersion failed: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("UserVersion = %d, want %d", version, SchemaVersion)
	}
}

func TestFileStoreCorruptFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fupan.json")

	store := NewFileStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	store.Close()

	if err := os.WriteFile(path, []byte("{ this is not json"), 0600); err != nil {
		t.Fatalf("failed to corrupt data file: %v", err)
	}

	corrupted := NewFileStore(path)
	if err := corrupted.Load(); err != nil {
		t.Fatalf("Load should tolerate a corrupt file, got: %v", err)
	}
	if _, ok := Get[string](corrupted, KeyAnnualPlan); ok {
		t.Error("corrupt file should read as empty")
	}
}
