// Package export serializes records and reports to formatted JSON.
// Export never writes to the record store.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"github.com/yuchenli/fupan/internal/models"
)

// Marshal renders v as two-space indented JSON.
func Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export data: %w", err)
	}
	return data, nil
}

// QA pairs a question with its (possibly empty) answer.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Category is one named group of question/answer pairs.
type Category struct {
	Name      string `json:"name"`
	Questions []QA   `json:"questions"`
}

// DeepReviewReport is the export shape for a deep review session.
type DeepReviewReport struct {
	Title      string     `json:"title"`
	Date       string     `json:"date"`
	Categories []Category `json:"categories"`
}

// BuildDeepReviewReport joins a record's answers with the current
// category config. Questions without an answer export with an empty
// string; answers to questions no longer in the config are omitted.
func BuildDeepReviewReport(rec models.DeepReviewRecord, cats []models.DeepCategory, now time.Time) DeepReviewReport {
	answers := rec.AnswerMap()

	title := rec.Title
	if title == "" {
		title = "深度复盘"
	}

	report := DeepReviewReport{
		Title:      title,
		Date:       now.Format(time.RFC3339),
		Categories: make([]Category, 0, len(cats)),
	}

	for _, cat := range cats {
		out := Category{
			Name:      cat.Name,
			Questions: make([]QA, 0, len(cat.Questions)),
		}
		for _, q := range cat.Questions {
			out.Questions = append(out.Questions, QA{
				Question: q.Text,
				Answer:   answers[q.ID],
			})
		}
		report.Categories = append(report.Categories, out)
	}

	return report
}

// ToClipboard copies v to the system clipboard as formatted JSON.
func ToClipboard(v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// ToFile writes v to path as formatted JSON.
func ToFile(v any, path string) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
