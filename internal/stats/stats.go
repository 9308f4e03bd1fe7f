// Package stats computes derived display statistics from loaded
// records. All functions are pure; the reference day is passed in
// explicitly so callers (and tests) control what "today" means.
package stats

import (
	"math"
	"time"

	"github.com/yuchenli/fupan/internal/models"
)

const dateLayout = "2006-01-02"

// Badge tags awarded by Badges. Every qualifying badge is returned,
// not just the highest tier.
const (
	BadgeWeekStreak  = "week-streak"
	BadgeMonthStreak = "month-streak"
	BadgeCentury     = "century"
	BadgeActionTaker = "action-taker"
	BadgePlanner     = "planner"
	BadgeDeepThinker = "deep-thinker"
)

// Badge thresholds.
const (
	weekStreakDays   = 7
	monthStreakDays  = 30
	centuryTotalDays = 100
	actionTakerRate  = 50
)

// Streak counts consecutive calendar days with a record, ending exactly
// at today. A missing entry for today yields 0 (strict policy: no grace
// day). Duplicate dates count once; unparseable dates never match.
func Streak(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		seen[d] = true
	}

	streak := 0
	day := today
	for seen[day.Format(dateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// CompletionRate returns completed/total as a rounded integer percent,
// or 0 when total is 0.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// QuarterlyDistribution tallies goals per quarter. Goals carrying an
// unknown quarter value are ignored. All four quarters are always
// present in the result.
func QuarterlyDistribution(goals []models.SMARTGoal) map[models.Quarter]int {
	counts := map[models.Quarter]int{
		models.QuarterQ1: 0,
		models.QuarterQ2: 0,
		models.QuarterQ3: 0,
		models.QuarterQ4: 0,
	}
	for _, g := range goals {
		if g.Quarter.Valid() {
			counts[g.Quarter]++
		}
	}
	return counts
}

// HeatmapDay is one cell of the review heatmap.
type HeatmapDay struct {
	Date      string `json:"date"`
	HasRecord bool   `json:"hasRecord"`
}

// Heatmap flags record presence for the last windowDays calendar days
// ending at today inclusive, oldest first. The result always has
// exactly windowDays entries regardless of data volume.
func Heatmap(dates []string, today time.Time, windowDays int) []HeatmapDay {
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		seen[d] = true
	}

	days := make([]HeatmapDay, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		days = append(days, HeatmapDay{Date: date, HasRecord: seen[date]})
	}
	return days
}

// Summary aggregates the numbers the dashboard and badges are built on.
type Summary struct {
	Streak          int
	TotalDays       int
	TotalGoals      int
	TotalTasks      int
	CompletedTasks  int
	TaskRate        int
	DeepReviewCount int
	HasPlan         bool
}

// BuildSummary derives a Summary from loaded records. hasPlan reports
// whether an annual plan has ever been saved.
func BuildSummary(plan models.AnnualPlan, hasPlan bool, daily []models.DailyRecord, deep []models.DeepReviewRecord, today time.Time) Summary {
	seen := make(map[string]bool, len(daily))
	dates := make([]string, 0, len(daily))
	for _, rec := range daily {
		if !seen[rec.Date] {
			seen[rec.Date] = true
			dates = append(dates, rec.Date)
		}
	}

	completed := 0
	for _, t := range plan.MonthlyTasks {
		if t.Completed {
			completed++
		}
	}

	return Summary{
		Streak:          Streak(dates, today),
		TotalDays:       len(dates),
		TotalGoals:      len(plan.Goals),
		TotalTasks:      len(plan.MonthlyTasks),
		CompletedTasks:  completed,
		TaskRate:        CompletionRate(completed, len(plan.MonthlyTasks)),
		DeepReviewCount: len(deep),
		HasPlan:         hasPlan,
	}
}

// Badges evaluates the independent achievement rules against s. Rules
// are order-insensitive; the returned order is fixed for display.
func Badges(s Summary) []string {
	var badges []string
	if s.Streak >= weekStreakDays {
		badges = append(badges, BadgeWeekStreak)
	}
	if s.Streak >= monthStreakDays {
		badges = append(badges, BadgeMonthStreak)
	}
	if s.TotalDays >= centuryTotalDays {
		badges = append(badges, BadgeCentury)
	}
	if s.TaskRate >= actionTakerRate {
		badges = append(badges, BadgeActionTaker)
	}
	if s.HasPlan {
		badges = append(badges, BadgePlanner)
	}
	if s.DeepReviewCount >= 1 {
		badges = append(badges, BadgeDeepThinker)
	}
	return badges
}

// MonthProgress reports completion for the tasks of one month.
func MonthProgress(tasks []models.MonthlyTask, month time.Month) (completed, total, rate int) {
	for _, t := range tasks {
		if t.Month != int(month) {
			continue
		}
		total++
		if t.Completed {
			completed++
		}
	}
	return completed, total, CompletionRate(completed, total)
}
