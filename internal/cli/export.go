package cli

import (
	"fmt"

	"github.com/yuchenli/fupan/internal/models"
)

// fullExport is the everything-at-once export shape.
type fullExport struct {
	AnnualPlan           *models.AnnualPlan        `json:"annualPlan,omitempty"`
	DailyReview          []models.DailyRecord      `json:"dailyReview"`
	DeepReview           []models.DeepReviewRecord `json:"deepReview"`
	DailyQuestionsConfig []models.DailyQuestion    `json:"dailyQuestionsConfig"`
	DeepQuestionsConfig  []models.DeepCategory     `json:"deepQuestionsConfig"`
}

type ExportCmd struct {
	Out       string `short:"o" help:"Write the export to a file instead of stdout." type:"path"`
	Clipboard bool   `short:"c" help:"Copy the export to the clipboard."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	out := fullExport{
		DailyReview:          ctx.Records.DailyRecords(),
		DeepReview:           ctx.Records.DeepReviews(),
		DailyQuestionsConfig: ctx.Questions.Daily(),
		DeepQuestionsConfig:  ctx.Questions.Deep(),
	}
	if plan, ok := ctx.Records.LoadPlan(); ok {
		out.AnnualPlan = &plan
	}

	if err := deliver(out, c.Out, c.Clipboard); err != nil {
		// Export is read-only; a failed delivery loses nothing.
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}
