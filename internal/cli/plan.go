package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yuchenli/fupan/internal/export"
	"github.com/yuchenli/fupan/internal/models"
	"github.com/yuchenli/fupan/internal/stats"
)

type PlanShowCmd struct{}

func (c *PlanShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, ok := ctx.Records.LoadPlan()
	if !ok {
		fmt.Println("No annual plan yet. Start with 'fupan plan kpt' or 'fupan plan goal add'.")
		return nil
	}

	fmt.Println("Annual plan")
	fmt.Printf("  created: %s\n", plan.CreatedAt)
	fmt.Printf("  updated: %s\n\n", plan.UpdatedAt)

	fmt.Println("KPT:")
	fmt.Printf("  Keep:    %s\n", orDash(plan.KPT.Keep))
	fmt.Printf("  Problem: %s\n", orDash(plan.KPT.Problem))
	fmt.Printf("  Try:     %s\n\n", orDash(plan.KPT.Try))

	if len(plan.Goals) == 0 {
		fmt.Println("No goals yet.")
	} else {
		dist := stats.QuarterlyDistribution(plan.Goals)
		fmt.Printf("Goals (%d total, Q1:%d Q2:%d Q3:%d Q4:%d):\n",
			len(plan.Goals),
			dist[models.QuarterQ1], dist[models.QuarterQ2],
			dist[models.QuarterQ3], dist[models.QuarterQ4])
		for _, g := range plan.Goals {
			fmt.Printf("  [%s] %s (ID: %s)\n", g.Quarter, g.Title, g.ID)
		}
	}
	fmt.Println()

	if len(plan.MonthlyTasks) == 0 {
		fmt.Println("No monthly tasks yet.")
		return nil
	}

	completed := 0
	for _, t := range plan.MonthlyTasks {
		if t.Completed {
			completed++
		}
	}
	rate := stats.CompletionRate(completed, len(plan.MonthlyTasks))
	fmt.Printf("Monthly tasks (%d/%d done, %d%%):\n", completed, len(plan.MonthlyTasks), rate)
	for _, t := range plan.MonthlyTasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		goalNote := ""
		if t.GoalID != "" {
			if goal := plan.GoalByID(t.GoalID); goal != nil {
				goalNote = fmt.Sprintf("  → %s", goal.Title)
			} else {
				goalNote = "  → (deleted goal)"
			}
		}
		fmt.Printf("  [%s] %2d月  %s (ID: %s)%s\n", mark, t.Month, t.Task, t.ID, goalNote)
	}

	return nil
}

type PlanKptCmd struct {
	Keep    *string `help:"Keep: what is working."`
	Problem *string `help:"Problem: what is not working."`
	Try     *string `help:"Try: what to change."`
}

func (c *PlanKptCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, _ := ctx.Records.LoadPlan()

	changed := false
	if c.Keep != nil {
		plan.KPT.Keep = *c.Keep
		changed = true
	}
	if c.Problem != nil {
		plan.KPT.Problem = *c.Problem
		changed = true
	}
	if c.Try != nil {
		plan.KPT.Try = *c.Try
		changed = true
	}

	if !changed {
		fmt.Println("KPT reflection:")
		fmt.Printf("  Keep:    %s\n", orDash(plan.KPT.Keep))
		fmt.Printf("  Problem: %s\n", orDash(plan.KPT.Problem))
		fmt.Printf("  Try:     %s\n", orDash(plan.KPT.Try))
		return nil
	}

	ctx.Records.SavePlan(plan)
	fmt.Println("KPT reflection saved.")
	return nil
}

type PlanGoalAddCmd struct {
	Title      string `arg:"" help:"Goal title."`
	Quarter    string `short:"q" help:"Quarter (Q1|Q2|Q3|Q4)." default:"Q1"`
	Specific   string `help:"S: what exactly will be done."`
	Measurable string `help:"M: how progress is measured."`
	Achievable string `help:"A: why this is realistic."`
	Relevant   string `help:"R: why this matters."`
	TimeBound  string `help:"T: deadline or time frame."`
}

func (c *PlanGoalAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("goal title must not be empty")
	}
	if !models.Quarter(c.Quarter).Valid() {
		return fmt.Errorf("invalid quarter: %s (expected Q1, Q2, Q3 or Q4)", c.Quarter)
	}
	return nil
}

func (c *PlanGoalAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, _ := ctx.Records.LoadPlan()

	goal := models.SMARTGoal{
		ID:         uuid.New().String(),
		Title:      c.Title,
		Specific:   c.Specific,
		Measurable: c.Measurable,
		Achievable: c.Achievable,
		Relevant:   c.Relevant,
		TimeBound:  c.TimeBound,
		Quarter:    models.Quarter(c.Quarter),
	}
	plan.Goals = append(plan.Goals, goal)
	ctx.Records.SavePlan(plan)

	fmt.Printf("Added goal: %s [%s] (ID: %s)\n", goal.Title, goal.Quarter, goal.ID)
	return nil
}

type PlanGoalDeleteCmd struct {
	ID string `arg:"" help:"ID of the goal to delete."`
}

func (c *PlanGoalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, _ := ctx.Records.LoadPlan()

	idx := -1
	for i, g := range plan.Goals {
		if g.ID == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("goal not found: %s", c.ID)
	}

	title := plan.Goals[idx].Title
	plan.Goals = append(plan.Goals[:idx], plan.Goals[idx+1:]...)
	ctx.Records.SavePlan(plan)

	fmt.Printf("Deleted goal: %s\n", title)

	// Tasks keep their goal reference; deletion never cascades.
	orphaned := 0
	for _, t := range plan.MonthlyTasks {
		if t.GoalID == c.ID {
			orphaned++
		}
	}
	if orphaned > 0 {
		fmt.Printf("Note: %d monthly task(s) still reference this goal.\n", orphaned)
	}
	return nil
}

type PlanTaskAddCmd struct {
	Task  string `arg:"" help:"Task description."`
	Month int    `short:"m" help:"Month (1-12)." required:""`
	Goal  string `short:"g" help:"ID of the goal this task works toward."`
}

func (c *PlanTaskAddCmd) Validate() error {
	if strings.TrimSpace(c.Task) == "" {
		return fmt.Errorf("task text must not be empty")
	}
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *PlanTaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, _ := ctx.Records.LoadPlan()

	task := models.MonthlyTask{
		ID:     uuid.New().String(),
		GoalID: c.Goal,
		Month:  c.Month,
		Task:   c.Task,
	}
	plan.MonthlyTasks = append(plan.MonthlyTasks, task)
	ctx.Records.SavePlan(plan)

	fmt.Printf("Added task for %d月: %s (ID: %s)\n", task.Month, task.Task, task.ID)
	if c.Goal != "" && plan.GoalByID(c.Goal) == nil {
		fmt.Printf("Note: goal %s does not exist; the reference is kept anyway.\n", c.Goal)
	}
	return nil
}

type PlanTaskDoneCmd struct {
	ID   string `arg:"" help:"ID of the task to mark."`
	Undo bool   `help:"Mark the task as not completed instead."`
}

func (c *PlanTaskDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, _ := ctx.Records.LoadPlan()

	for i := range plan.MonthlyTasks {
		if plan.MonthlyTasks[i].ID == c.ID {
			plan.MonthlyTasks[i].Completed = !c.Undo
			ctx.Records.SavePlan(plan)
			if c.Undo {
				fmt.Printf("Task reopened: %s\n", plan.MonthlyTasks[i].Task)
			} else {
				fmt.Printf("Task completed: %s\n", plan.MonthlyTasks[i].Task)
			}
			return nil
		}
	}

	return fmt.Errorf("task not found: %s", c.ID)
}

type PlanExportCmd struct {
	Out       string `short:"o" help:"Write the export to a file instead of stdout." type:"path"`
	Clipboard bool   `short:"c" help:"Copy the export to the clipboard."`
}

func (c *PlanExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, ok := ctx.Records.LoadPlan()
	if !ok {
		return fmt.Errorf("no annual plan to export")
	}

	return deliver(plan, c.Out, c.Clipboard)
}

type PlanResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *PlanResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if !c.Force {
		ok, err := confirm("This will erase the annual plan and start over. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	plan := ctx.Records.ResetPlan()
	fmt.Printf("Annual plan reset (created %s).\n", plan.CreatedAt)
	return nil
}

// deliver sends v to the clipboard, a file, or stdout.
func deliver(v any, out string, toClipboard bool) error {
	if toClipboard {
		if err := export.ToClipboard(v); err != nil {
			return err
		}
		fmt.Println("Copied to clipboard.")
		return nil
	}
	if out != "" {
		if err := export.ToFile(v, out); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", out)
		return nil
	}

	data, err := export.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func currentMonth() time.Month {
	return time.Now().Month()
}
