package stats

import (
	"testing"
	"time"

	"github.com/yuchenli/fupan/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStreakEmpty(t *testing.T) {
	if got := Streak(nil, day("2026-08-29")); got != 0 {
		t.Errorf("Streak(nil) = %d, want 0", got)
	}
}

func TestStreakTodayOnly(t *testing.T) {
	dates := []string{"2026-08-29"}
	if got := Streak(dates, day("2026-08-29")); got != 1 {
		t.Errorf("Streak = %d, want 1", got)
	}
}

func TestStreakConsecutiveChain(t *testing.T) {
	dates := []string{"2026-08-27", "2026-08-28", "2026-08-29"}
	if got := Streak(dates, day("2026-08-29")); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}
}

func TestStreakMissingTodayIsZero(t *testing.T) {
	// Records up to yesterday do not count without one for today.
	dates := []string{"2026-08-27", "2026-08-28"}
	if got := Streak(dates, day("2026-08-29")); got != 0 {
		t.Errorf("Streak = %d, want 0", got)
	}
}

func TestStreakGapBreaksChain(t *testing.T) {
	dates := []string{"2026-08-25", "2026-08-26", "2026-08-28", "2026-08-29"}
	if got := Streak(dates, day("2026-08-29")); got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestStreakDuplicateDatesCountOnce(t *testing.T) {
	dates := []string{"2026-08-29", "2026-08-29", "2026-08-28"}
	if got := Streak(dates, day("2026-08-29")); got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{3, 4, 75},
		{1, 3, 33},
		{2, 3, 67},
		{10, 10, 100},
	}
	for _, tt := range tests {
		if got := CompletionRate(tt.completed, tt.total); got != tt.want {
			t.Errorf("CompletionRate(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestQuarterlyDistribution(t *testing.T) {
	goals := []models.SMARTGoal{
		{ID: "1", Quarter: models.QuarterQ1},
		{ID: "2", Quarter: models.QuarterQ1},
		{ID: "3", Quarter: models.QuarterQ3},
		{ID: "4", Quarter: "Q7"},
	}

	dist := QuarterlyDistribution(goals)
	if len(dist) != 4 {
		t.Fatalf("expected all 4 quarters present, got %d", len(dist))
	}
	if dist[models.QuarterQ1] != 2 || dist[models.QuarterQ2] != 0 || dist[models.QuarterQ3] != 1 || dist[models.QuarterQ4] != 0 {
		t.Errorf("unexpected distribution: %v", dist)
	}
}

func TestHeatmapWindow(t *testing.T) {
	today := day("2026-08-29")
	dates := []string{"2026-08-29", "2026-08-01"}

	days := Heatmap(dates, today, 30)
	if len(days) != 30 {
		t.Fatalf("expected 30 entries, got %d", len(days))
	}
	if days[0].Date != "2026-07-31" {
		t.Errorf("first entry = %s, want 2026-07-31", days[0].Date)
	}
	if days[29].Date != "2026-08-29" {
		t.Errorf("last entry = %s, want 2026-08-29", days[29].Date)
	}
	if !days[29].HasRecord {
		t.Error("today should have a record")
	}
	if !days[1].HasRecord {
		t.Error("2026-08-01 should have a record")
	}
	if days[0].HasRecord {
		t.Error("2026-07-31 should not have a record")
	}
}

func TestHeatmapEmptyData(t *testing.T) {
	days := Heatmap(nil, day("2026-08-29"), 31)
	if len(days) != 31 {
		t.Fatalf("expected 31 entries, got %d", len(days))
	}
	for _, d := range days {
		if d.HasRecord {
			t.Errorf("no records stored, but %s is marked", d.Date)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	plan := models.AnnualPlan{
		Goals: []models.SMARTGoal{{ID: "g1"}, {ID: "g2"}},
		MonthlyTasks: []models.MonthlyTask{
			{ID: "t1", Completed: true},
			{ID: "t2", Completed: false},
		},
	}
	daily := []models.DailyRecord{
		{Date: "2026-08-29"},
		{Date: "2026-08-28"},
		{Date: "2026-08-28"}, // duplicate date
	}
	deep := []models.DeepReviewRecord{{ID: "d1"}}

	s := BuildSummary(plan, true, daily, deep, day("2026-08-29"))
	if s.Streak != 2 {
		t.Errorf("Streak = %d, want 2", s.Streak)
	}
	if s.TotalDays != 2 {
		t.Errorf("TotalDays = %d, want 2", s.TotalDays)
	}
	if s.TotalGoals != 2 {
		t.Errorf("TotalGoals = %d, want 2", s.TotalGoals)
	}
	if s.TaskRate != 50 {
		t.Errorf("TaskRate = %d, want 50", s.TaskRate)
	}
	if s.DeepReviewCount != 1 {
		t.Errorf("DeepReviewCount = %d, want 1", s.DeepReviewCount)
	}
	if !s.HasPlan {
		t.Error("HasPlan = false, want true")
	}
}

func TestBadgesThresholds(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    []string
	}{
		{"nothing", Summary{}, nil},
		{"week streak", Summary{Streak: 7}, []string{BadgeWeekStreak}},
		{"month streak includes week", Summary{Streak: 30}, []string{BadgeWeekStreak, BadgeMonthStreak}},
		{"century", Summary{TotalDays: 100}, []string{BadgeCentury}},
		{"action taker at 50", Summary{TaskRate: 50}, []string{BadgeActionTaker}},
		{"below action taker", Summary{TaskRate: 49}, nil},
		{"planner", Summary{HasPlan: true}, []string{BadgePlanner}},
		{"deep thinker", Summary{DeepReviewCount: 1}, []string{BadgeDeepThinker}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Badges(tt.summary)
			if len(got) != len(tt.want) {
				t.Fatalf("Badges = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Badges[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMonthProgress(t *testing.T) {
	tasks := []models.MonthlyTask{
		{ID: "t1", Month: 8, Completed: true},
		{ID: "t2", Month: 8, Completed: false},
		{ID: "t3", Month: 9, Completed: true},
	}

	completed, total, rate := MonthProgress(tasks, time.August)
	if completed != 1 || total != 2 || rate != 50 {
		t.Errorf("MonthProgress = (%d, %d, %d), want (1, 2, 50)", completed, total, rate)
	}

	completed, total, rate = MonthProgress(tasks, time.January)
	if completed != 0 || total != 0 || rate != 0 {
		t.Errorf("MonthProgress for empty month = (%d, %d, %d), want zeros", completed, total, rate)
	}
}
