package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yuchenli/fupan/internal/models"
)

func TestMarshalIndented(t *testing.T) {
	data, err := Marshal(map[string]string{"key": "value"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := "{\n  \"key\": \"value\"\n}"
	if string(data) != want {
		t.Errorf("Marshal = %q, want %q", data, want)
	}
}

func TestBuildDeepReviewReport(t *testing.T) {
	cats := []models.DeepCategory{
		{
			ID:   "reflection",
			Name: "深度反思",
			Questions: []models.DeepQuestion{
				{ID: "q1", Text: "问题一"},
				{ID: "q2", Text: "问题二"},
			},
		},
		{
			ID:   "planning",
			Name: "规划",
			Questions: []models.DeepQuestion{
				{ID: "q3", Text: "问题三"},
			},
		},
	}
	rec := models.DeepReviewRecord{
		ID:    "r1",
		Title: "2026年深度复盘",
		Answers: []models.DeepAnswer{
			{QuestionID: "q1", Answer: "答案一"},
			{QuestionID: "stale", Answer: "removed question"},
		},
	}

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	report := BuildDeepReviewReport(rec, cats, now)

	if report.Title != "2026年深度复盘" {
		t.Errorf("Title = %q", report.Title)
	}
	if report.Date != now.Format(time.RFC3339) {
		t.Errorf("Date = %q", report.Date)
	}
	if len(report.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(report.Categories))
	}

	first := report.Categories[0]
	if first.Name != "深度反思" || len(first.Questions) != 2 {
		t.Fatalf("unexpected first category: %+v", first)
	}
	if first.Questions[0].Answer != "答案一" {
		t.Errorf("answered question lost its answer: %+v", first.Questions[0])
	}
	// Unanswered questions export with an empty string.
	if first.Questions[1].Answer != "" {
		t.Errorf("unanswered question should export empty, got %q", first.Questions[1].Answer)
	}

	// Answers to questions no longer configured are dropped.
	for _, cat := range report.Categories {
		for _, qa := range cat.Questions {
			if qa.Answer == "removed question" {
				t.Error("stale answer should not appear in the report")
			}
		}
	}
}

func TestBuildDeepReviewReportTitleFallback(t *testing.T) {
	report := BuildDeepReviewReport(models.DeepReviewRecord{}, nil, time.Now())
	if report.Title != "深度复盘" {
		t.Errorf("Title = %q, want fallback", report.Title)
	}
	if report.Categories == nil {
		t.Error("Categories should be an empty slice, not nil")
	}
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")

	if err := ToFile(map[string]int{"n": 1}, path); err != nil {
		t.Fatalf("ToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export file: %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Error("export file should end with a newline")
	}

	var out map[string]int
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export file is not valid JSON: %v", err)
	}
	if out["n"] != 1 {
		t.Errorf("round trip mismatch: %v", out)
	}
}
