// Package questions manages the user-editable question configuration
// backing the daily and deep review forms. Reads fall back to the
// compiled-in defaults; writes validate required fields and abort
// without a partial write when a field is empty.
package questions

import (
	"fmt"
	"strings"

	"github.com/yuchenli/fupan/internal/kv"
	"github.com/yuchenli/fupan/internal/models"
)

// ValidationError is a user-facing failure: the save is aborted and the
// message is shown as-is. It never indicates a programming error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Store reads and writes question configuration through the key-value
// store. Uniqueness of keys and ids is not enforced here; 'fupan
// doctor' reports duplicates as warnings.
type Store struct {
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// Daily returns the saved daily questions, or the defaults when nothing
// usable is stored.
func (s *Store) Daily() []models.DailyQuestion {
	qs, ok := kv.Get[[]models.DailyQuestion](s.kv, kv.KeyDailyQuestions)
	if !ok || len(qs) == 0 {
		return DefaultDaily()
	}
	return qs
}

// Deep returns the saved deep review categories, or the defaults when
// nothing usable is stored.
func (s *Store) Deep() []models.DeepCategory {
	cats, ok := kv.Get[[]models.DeepCategory](s.kv, kv.KeyDeepQuestions)
	if !ok || len(cats) == 0 {
		return DefaultDeep()
	}
	return cats
}

// SaveDaily validates and persists the daily question list.
func (s *Store) SaveDaily(qs []models.DailyQuestion) error {
	for i, q := range qs {
		if strings.TrimSpace(q.Key) == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("daily question %d", i+1),
				Message: "key must not be empty",
			}
		}
		if strings.TrimSpace(q.Question) == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("daily question %d", i+1),
				Message: "question text must not be empty",
			}
		}
	}

	kv.Set(s.kv, kv.KeyDailyQuestions, qs)
	return nil
}

// SaveDeep validates and persists the deep review categories.
func (s *Store) SaveDeep(cats []models.DeepCategory) error {
	for i, cat := range cats {
		if strings.TrimSpace(cat.Name) == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("category %d", i+1),
				Message: "name must not be empty",
			}
		}
		for j, q := range cat.Questions {
			if strings.TrimSpace(q.Text) == "" {
				return &ValidationError{
					Field:   fmt.Sprintf("category %q question %d", cat.Name, j+1),
					Message: "question text must not be empty",
				}
			}
		}
	}

	kv.Set(s.kv, kv.KeyDeepQuestions, cats)
	return nil
}

// ResetToDefault overwrites both configs with the compiled-in defaults,
// discarding user customizations.
func (s *Store) ResetToDefault() {
	kv.Set(s.kv, kv.KeyDailyQuestions, DefaultDaily())
	kv.Set(s.kv, kv.KeyDeepQuestions, DefaultDeep())
}
