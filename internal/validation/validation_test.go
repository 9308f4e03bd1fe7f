package validation

import (
	"strings"
	"testing"

	"github.com/yuchenli/fupan/internal/models"
)

func conflictTypes(result ValidationResult) map[ConflictType]int {
	types := make(map[ConflictType]int)
	for _, c := range result.Conflicts {
		types[c.Type]++
	}
	return types
}

func TestValidatePlanClean(t *testing.T) {
	plan := models.AnnualPlan{
		Goals: []models.SMARTGoal{
			{ID: "g1", Title: "read", Quarter: models.QuarterQ1},
		},
		MonthlyTasks: []models.MonthlyTask{
			{ID: "t1", GoalID: "g1", Month: 3, Task: "finish a book"},
		},
	}

	result := New().ValidatePlan(plan)
	if result.HasConflicts() {
		t.Errorf("clean plan reported conflicts: %v", result.Conflicts)
	}
	if got := result.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport = %q", got)
	}
}

func TestValidatePlanDuplicateIDs(t *testing.T) {
	plan := models.AnnualPlan{
		Goals: []models.SMARTGoal{
			{ID: "g1", Quarter: models.QuarterQ1},
			{ID: "g1", Quarter: models.QuarterQ2},
		},
		MonthlyTasks: []models.MonthlyTask{
			{ID: "t1", Month: 1},
			{ID: "t1", Month: 2},
		},
	}

	types := conflictTypes(New().ValidatePlan(plan))
	if types[ConflictDuplicateGoalID] != 1 {
		t.Errorf("expected one duplicate_goal_id conflict, got %d", types[ConflictDuplicateGoalID])
	}
	if types[ConflictDuplicateTaskID] != 1 {
		t.Errorf("expected one duplicate_task_id conflict, got %d", types[ConflictDuplicateTaskID])
	}
}

func TestValidatePlanMonthAndQuarter(t *testing.T) {
	plan := models.AnnualPlan{
		Goals: []models.SMARTGoal{
			{ID: "g1", Quarter: "Q5"},
		},
		MonthlyTasks: []models.MonthlyTask{
			{ID: "t1", Month: 0},
			{ID: "t2", Month: 13},
			{ID: "t3", Month: 6},
		},
	}

	types := conflictTypes(New().ValidatePlan(plan))
	if types[ConflictMonthOutOfRange] != 2 {
		t.Errorf("expected 2 month_out_of_range conflicts, got %d", types[ConflictMonthOutOfRange])
	}
	if types[ConflictInvalidQuarter] != 1 {
		t.Errorf("expected 1 invalid_quarter conflict, got %d", types[ConflictInvalidQuarter])
	}
}

func TestValidatePlanDanglingGoalRef(t *testing.T) {
	plan := models.AnnualPlan{
		MonthlyTasks: []models.MonthlyTask{
			{ID: "t1", GoalID: "gone", Month: 4},
			{ID: "t2", GoalID: "", Month: 4}, // no reference is fine
		},
	}

	result := New().ValidatePlan(plan)
	types := conflictTypes(result)
	if types[ConflictDanglingGoalRef] != 1 {
		t.Errorf("expected 1 dangling_goal_ref conflict, got %d", types[ConflictDanglingGoalRef])
	}
	if !strings.Contains(result.FormatReport(), "gone") {
		t.Error("report should name the missing goal id")
	}
}

func TestValidateConfigDuplicates(t *testing.T) {
	daily := []models.DailyQuestion{
		{Key: "valuable", Question: "a"},
		{Key: "valuable", Question: "b"},
	}
	cats := []models.DeepCategory{
		{ID: "c1", Name: "one", Questions: []models.DeepQuestion{{ID: "q1", Text: "x"}}},
		{ID: "c1", Name: "two", Questions: []models.DeepQuestion{{ID: "q1", Text: "y"}}},
	}

	types := conflictTypes(New().ValidateConfig(daily, cats))
	if types[ConflictDuplicateQuestionKey] != 1 {
		t.Errorf("expected duplicate_question_key, got %v", types)
	}
	if types[ConflictDuplicateCategoryID] != 1 {
		t.Errorf("expected duplicate_category_id, got %v", types)
	}
	// q1 appears in two categories; cross-category duplicates count.
	if types[ConflictDuplicateQuestionID] != 1 {
		t.Errorf("expected duplicate_question_id, got %v", types)
	}
}

func TestValidateConfigClean(t *testing.T) {
	daily := []models.DailyQuestion{{Key: "k1", Question: "a"}}
	cats := []models.DeepCategory{
		{ID: "c1", Name: "one", Questions: []models.DeepQuestion{{ID: "q1", Text: "x"}}},
		{ID: "c2", Name: "two", Questions: []models.DeepQuestion{{ID: "q2", Text: "y"}}},
	}

	result := New().ValidateConfig(daily, cats)
	if result.HasConflicts() {
		t.Errorf("clean config reported conflicts: %v", result.Conflicts)
	}
}
