package kv

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logical keys for the persisted state, one JSON blob each.
const (
	KeyAnnualPlan     = "annual-plan"
	KeyDailyReview    = "daily-review"
	KeyDeepReview     = "deep-review"
	KeyDailyQuestions = "daily-questions-config"
	KeyDeepQuestions  = "deep-questions-config"
)

// Keys lists every logical key in storage.
var Keys = []string{
	KeyAnnualPlan,
	KeyDailyReview,
	KeyDeepReview,
	KeyDailyQuestions,
	KeyDeepQuestions,
}

// SchemaVersion tags every stored value so a future shape change cannot
// be mistaken for current data.
const SchemaVersion = 1

// Store is the durable key-value surface everything else is built on.
//
// Persistence is best effort: Set, Remove and Clear never fail from the
// caller's point of view. A storage error is reported on stderr and the
// write is dropped. Get treats malformed stored text as absent.
//
// Concurrency note: a Store is not safe for concurrent use, and running
// multiple fupan processes against the same data file is not supported.
type Store interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value surface
	Get(key string) ([]byte, bool)
	Set(key string, value any)
	Remove(key string)
	Clear()

	// Path returns the location of the underlying data file.
	Path() string
}

// envelope wraps every stored value with a schema version tag.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Get loads and decodes the value stored under key. A missing key, a
// version mismatch or malformed data all read as absent; the latter two
// are reported on stderr.
func Get[T any](s Store, key string) (T, bool) {
	var out T

	raw, ok := s.Get(key)
	if !ok {
		return out, false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		warnf("discarding malformed value for %q: %v", key, err)
		return out, false
	}
	if env.Version != SchemaVersion {
		warnf("discarding value for %q with unsupported version %d", key, env.Version)
		return out, false
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		warnf("discarding malformed value for %q: %v", key, err)
		var zero T
		return zero, false
	}

	return out, true
}

// Set encodes value under the current schema version and stores it.
func Set(s Store, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		warnf("failed to serialize value for %q: %v", key, err)
		return
	}
	s.Set(key, envelope{Version: SchemaVersion, Data: data})
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
