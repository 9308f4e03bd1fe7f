package cli

import (
	"fmt"
	"time"

	"github.com/yuchenli/fupan/internal/export"
	"github.com/yuchenli/fupan/internal/models"
	"github.com/yuchenli/fupan/internal/stats"
)

type DeepNewCmd struct{}

func (c *DeepNewCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	record := ctx.Records.CreateDeepReview()
	fmt.Printf("Created deep review: %s (ID: %s)\n", record.Title, record.ID)
	fmt.Println("Answer questions with 'fupan deep answer' or the TUI.")
	return nil
}

type DeepListCmd struct{}

func (c *DeepListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	records := ctx.Records.DeepReviews()
	if len(records) == 0 {
		fmt.Println("No deep reviews yet. Start one with 'fupan deep new'.")
		return nil
	}

	total := models.QuestionCount(ctx.Questions.Deep())
	fmt.Printf("Deep reviews (%d):\n", len(records))
	for _, rec := range records {
		answered := countAnswered(rec)
		fmt.Printf("  %s  %s  %d/%d answered (ID: %s)\n",
			rec.CreatedAt[:10], rec.Title, answered, total, rec.ID)
	}
	return nil
}

type DeepShowCmd struct {
	ID string `arg:"" help:"ID of the deep review to show."`
}

func (c *DeepShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	record, err := ctx.Records.DeepReviewByID(c.ID)
	if err != nil {
		return err
	}

	cats := ctx.Questions.Deep()
	answers := record.AnswerMap()
	total := models.QuestionCount(cats)
	answered := countAnswered(record)

	fmt.Printf("%s\n", record.Title)
	fmt.Printf("  created: %s\n", record.CreatedAt)
	fmt.Printf("  updated: %s\n", record.UpdatedAt)
	fmt.Printf("  progress: %d/%d (%d%%)\n\n", answered, total, stats.CompletionRate(answered, total))

	for _, cat := range cats {
		fmt.Printf("%s (%d questions)\n", cat.Name, len(cat.Questions))
		for _, q := range cat.Questions {
			fmt.Printf("  [%s] %s\n", q.ID, q.Text)
			if answer := answers[q.ID]; answer != "" {
				fmt.Printf("        %s\n", answer)
			}
		}
		fmt.Println()
	}

	return nil
}

type DeepAnswerCmd struct {
	ID      string            `arg:"" help:"ID of the deep review to edit."`
	Answers map[string]string `short:"a" help:"Answers as questionId=text pairs." required:""`
}

func (c *DeepAnswerCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	record, err := ctx.Records.DeepReviewByID(c.ID)
	if err != nil {
		return err
	}

	// Merge into the record's current answers; saving replaces the
	// whole answer list. An empty text drops the answer.
	merged := record.AnswerMap()
	for questionID, text := range c.Answers {
		if text == "" {
			delete(merged, questionID)
		} else {
			merged[questionID] = text
		}
	}

	record, err = ctx.Records.SaveDeepAnswers(c.ID, merged)
	if err != nil {
		return err
	}

	total := models.QuestionCount(ctx.Questions.Deep())
	fmt.Printf("Saved. %d/%d questions answered.\n", countAnswered(record), total)
	return nil
}

type DeepExportCmd struct {
	ID        string `arg:"" help:"ID of the deep review to export."`
	Out       string `short:"o" help:"Write the export to a file instead of stdout." type:"path"`
	Clipboard bool   `short:"c" help:"Copy the export to the clipboard."`
}

func (c *DeepExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	record, err := ctx.Records.DeepReviewByID(c.ID)
	if err != nil {
		return err
	}

	report := export.BuildDeepReviewReport(record, ctx.Questions.Deep(), time.Now())
	return deliver(report, c.Out, c.Clipboard)
}

func countAnswered(rec models.DeepReviewRecord) int {
	n := 0
	for _, a := range rec.Answers {
		if a.Answer != "" {
			n++
		}
	}
	return n
}
