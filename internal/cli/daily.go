package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/yuchenli/fupan/internal/stats"
)

type DailySaveCmd struct {
	Date    string            `arg:"" help:"Date to save (YYYY-MM-DD or 'today')." default:"today"`
	Answers map[string]string `short:"a" help:"Answers as key=text pairs; keys come from the daily question config."`
}

func (c *DailySaveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	answers := c.Answers
	if len(answers) == 0 {
		// No flags given: walk the configured questions interactively.
		answers, err = c.promptAnswers(ctx, date)
		if err != nil {
			return err
		}
	}

	record, err := ctx.Records.UpsertDaily(date, answers)
	if err != nil {
		return err
	}

	dates := ctx.Records.DailyDates()
	streak := stats.Streak(dates, time.Now())
	fmt.Printf("Saved review for %s (record %s).\n", record.Date, record.ID)
	fmt.Printf("Streak: %d day(s), %d total record(s).\n", streak, len(dates))
	return nil
}

func (c *DailySaveCmd) promptAnswers(ctx *Context, date string) (map[string]string, error) {
	existing := map[string]string{}
	if rec, ok := ctx.Records.DailyRecordByDate(date); ok {
		existing = rec.Answers
		fmt.Printf("Editing existing review for %s. Empty input keeps the previous answer.\n\n", date)
	}

	answers := make(map[string]string)
	for i, q := range ctx.Questions.Daily() {
		fmt.Printf("%d. %s\n", i+1, q.Question)
		if prev, ok := existing[q.Key]; ok && prev != "" {
			fmt.Printf("   (current: %s)\n", prev)
		} else if q.Placeholder != "" {
			fmt.Printf("   (%s)\n", q.Placeholder)
		}
		fmt.Print("> ")

		line, err := readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			line = existing[q.Key]
		}
		if line != "" {
			answers[q.Key] = line
		}
	}
	return answers, nil
}

type DailyShowCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DailyShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	record, ok := ctx.Records.DailyRecordByDate(date)
	if !ok {
		fmt.Printf("No review recorded for %s.\n", date)
		return nil
	}

	fmt.Printf("Review for %s:\n\n", date)

	// Render configured questions first, then any answers whose
	// question has since been removed from the config.
	shown := make(map[string]bool)
	for _, q := range ctx.Questions.Daily() {
		shown[q.Key] = true
		if answer, ok := record.Answers[q.Key]; ok && answer != "" {
			fmt.Printf("  %s\n    %s\n", q.Question, answer)
		}
	}
	for key, answer := range record.Answers {
		if !shown[key] && answer != "" {
			fmt.Printf("  [%s]\n    %s\n", key, answer)
		}
	}

	return nil
}

type DailyListCmd struct {
	Limit int `short:"n" help:"Maximum number of records to list." default:"30"`
}

func (c *DailyListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	records := ctx.Records.DailyRecords()
	if len(records) == 0 {
		fmt.Println("No daily reviews yet.")
		return nil
	}

	sorted := make([]string, 0, len(records))
	answered := make(map[string]int, len(records))
	for _, rec := range records {
		sorted = append(sorted, rec.Date)
		n := 0
		for _, a := range rec.Answers {
			if a != "" {
				n++
			}
		}
		answered[rec.Date] = n
	}
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	streak := stats.Streak(sorted, time.Now())
	fmt.Printf("Daily reviews (%d total, streak %d):\n", len(records), streak)

	for i, date := range sorted {
		if c.Limit > 0 && i >= c.Limit {
			fmt.Printf("  ... and %d more\n", len(sorted)-i)
			break
		}
		fmt.Printf("  %s  %d answer(s)\n", date, answered[date])
	}

	return nil
}
