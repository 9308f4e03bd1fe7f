package repository

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/yuchenli/fupan/internal/kv"
	"github.com/yuchenli/fupan/internal/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	store := kv.NewFileStore(filepath.Join(t.TempDir(), "fupan.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func TestLoadPlanBeforeFirstSave(t *testing.T) {
	repo := newTestRepo(t)

	plan, ok := repo.LoadPlan()
	if ok {
		t.Error("LoadPlan should report absent before first save")
	}
	if plan.Goals == nil || plan.MonthlyTasks == nil {
		t.Error("empty plan should have non-nil slices")
	}
}

func TestSavePlanStampsTimestamps(t *testing.T) {
	repo := newTestRepo(t)

	plan, _ := repo.LoadPlan()
	plan.KPT.Keep = "morning reading"
	saved := repo.SavePlan(plan)

	if saved.CreatedAt == "" || saved.UpdatedAt == "" {
		t.Fatal("SavePlan should stamp CreatedAt and UpdatedAt")
	}
	if _, err := time.Parse(time.RFC3339, saved.CreatedAt); err != nil {
		t.Errorf("CreatedAt is not RFC3339: %q", saved.CreatedAt)
	}

	loaded, ok := repo.LoadPlan()
	if !ok {
		t.Fatal("LoadPlan should report present after save")
	}
	if loaded.KPT.Keep != "morning reading" {
		t.Errorf("KPT.Keep = %q, want %q", loaded.KPT.Keep, "morning reading")
	}
	if loaded.CreatedAt != saved.CreatedAt {
		t.Error("CreatedAt should survive the round trip")
	}

	// A second save keeps CreatedAt.
	resaved := repo.SavePlan(loaded)
	if resaved.CreatedAt != saved.CreatedAt {
		t.Error("second save should not change CreatedAt")
	}
}

func TestResetPlan(t *testing.T) {
	repo := newTestRepo(t)

	plan, _ := repo.LoadPlan()
	plan.Goals = append(plan.Goals, models.SMARTGoal{ID: "g1", Title: "learn go"})
	repo.SavePlan(plan)

	fresh := repo.ResetPlan()
	if len(fresh.Goals) != 0 {
		t.Error("ResetPlan should drop all goals")
	}

	loaded, ok := repo.LoadPlan()
	if !ok {
		t.Fatal("plan should still exist after reset")
	}
	if len(loaded.Goals) != 0 {
		t.Error("reset plan should persist empty")
	}
}

func TestUpsertDailyCreatesAndPrepends(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.UpsertDaily("2026-08-28", map[string]string{"valuable": "shipped a feature"})
	if err != nil {
		t.Fatalf("UpsertDaily failed: %v", err)
	}
	if first.ID == "" || first.CreatedAt == "" {
		t.Error("new record should get an id and createdAt")
	}

	second, err := repo.UpsertDaily("2026-08-29", map[string]string{"valuable": "code review"})
	if err != nil {
		t.Fatalf("UpsertDaily failed: %v", err)
	}

	records := repo.DailyRecords()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != second.ID {
		t.Error("newest record should be first")
	}
}

func TestUpsertDailyUpdatePreservesIdentity(t *testing.T) {
	repo := newTestRepo(t)

	repo.UpsertDaily("2026-08-28", map[string]string{"valuable": "old"})
	original, err := repo.UpsertDaily("2026-08-29", map[string]string{"valuable": "first pass"})
	if err != nil {
		t.Fatalf("UpsertDaily failed: %v", err)
	}

	updated, err := repo.UpsertDaily("2026-08-29", map[string]string{"learned": "new answer"})
	if err != nil {
		t.Fatalf("UpsertDaily update failed: %v", err)
	}

	if updated.ID != original.ID {
		t.Error("update should keep the record id")
	}
	if updated.CreatedAt != original.CreatedAt {
		t.Error("update should keep createdAt")
	}
	if _, ok := updated.Answers["valuable"]; ok {
		t.Error("update should replace answers wholesale, not merge")
	}
	if updated.Answers["learned"] != "new answer" {
		t.Error("updated answers missing")
	}

	// Position in the list is preserved too.
	records := repo.DailyRecords()
	if records[0].Date != "2026-08-29" {
		t.Errorf("updated record moved; first is %s", records[0].Date)
	}
}

func TestUpsertDailyRejectsBadDate(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.UpsertDaily("29/08/2026", nil); err == nil {
		t.Error("UpsertDaily should reject a non-ISO date")
	}
	if _, err := repo.UpsertDaily("2026-13-01", nil); err == nil {
		t.Error("UpsertDaily should reject an impossible date")
	}
}

func TestDailyDatesDistinct(t *testing.T) {
	repo := newTestRepo(t)

	repo.UpsertDaily("2026-08-28", nil)
	repo.UpsertDaily("2026-08-29", nil)
	repo.UpsertDaily("2026-08-29", map[string]string{"valuable": "x"})

	dates := repo.DailyDates()
	if len(dates) != 2 {
		t.Errorf("DailyDates = %v, want 2 distinct dates", dates)
	}
}

func TestCreateDeepReview(t *testing.T) {
	repo := newTestRepo(t)

	first := repo.CreateDeepReview()
	if first.ID == "" {
		t.Error("new deep review should get an id")
	}
	wantTitle := fmt.Sprintf("%d年深度复盘", time.Now().Year())
	if first.Title != wantTitle {
		t.Errorf("Title = %q, want %q", first.Title, wantTitle)
	}
	if first.Answers == nil {
		t.Error("Answers should be an empty slice, not nil")
	}

	second := repo.CreateDeepReview()
	records := repo.DeepReviews()
	if len(records) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(records))
	}
	if records[0].ID != second.ID {
		t.Error("newest review should be first")
	}
}

func TestDeepReviewByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.DeepReviewByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveDeepAnswersOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	rec := repo.CreateDeepReview()

	saved, err := repo.SaveDeepAnswers(rec.ID, map[string]string{
		"q2": "second",
		"q1": "first",
	})
	if err != nil {
		t.Fatalf("SaveDeepAnswers failed: %v", err)
	}
	if len(saved.Answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(saved.Answers))
	}
	// Stored order is sorted by question id for stable output.
	if saved.Answers[0].QuestionID != "q1" || saved.Answers[1].QuestionID != "q2" {
		t.Errorf("answers not sorted by question id: %+v", saved.Answers)
	}

	// Saving a smaller map drops the missing answers.
	resaved, err := repo.SaveDeepAnswers(rec.ID, map[string]string{"q2": "only"})
	if err != nil {
		t.Fatalf("SaveDeepAnswers failed: %v", err)
	}
	if len(resaved.Answers) != 1 || resaved.Answers[0].QuestionID != "q2" {
		t.Errorf("overwrite should drop unlisted answers: %+v", resaved.Answers)
	}
	if resaved.UpdatedAt < saved.UpdatedAt {
		t.Error("UpdatedAt should move forward on save")
	}
}
