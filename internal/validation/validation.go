// Package validation checks stored data for integrity problems. None
// of the findings block a save: dangling references and duplicate ids
// are tolerated by design, and validation only makes them visible.
package validation

import (
	"fmt"

	"github.com/yuchenli/fupan/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateGoalID      ConflictType = "duplicate_goal_id"
	ConflictDuplicateTaskID      ConflictType = "duplicate_task_id"
	ConflictMonthOutOfRange      ConflictType = "month_out_of_range"
	ConflictInvalidQuarter       ConflictType = "invalid_quarter"
	ConflictDanglingGoalRef      ConflictType = "dangling_goal_ref"
	ConflictDuplicateQuestionKey ConflictType = "duplicate_question_key"
	ConflictDuplicateCategoryID  ConflictType = "duplicate_category_id"
	ConflictDuplicateQuestionID  ConflictType = "duplicate_question_id"
)

// Conflict represents a detected integrity problem
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // ids or keys involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates plans and question configs
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidatePlan checks the annual plan for duplicate ids, out-of-range
// months and dangling goal references.
func (v *Validator) ValidatePlan(plan models.AnnualPlan) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	goalIDs := make(map[string]int)
	for _, g := range plan.Goals {
		goalIDs[g.ID]++
	}
	for id, n := range goalIDs {
		if n > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateGoalID,
				Description: fmt.Sprintf("Duplicate goal id %q (%d goals)", id, n),
				Items:       []string{id},
			})
		}
	}

	for _, g := range plan.Goals {
		if g.Quarter != "" && !g.Quarter.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidQuarter,
				Description: fmt.Sprintf("Goal %q has unknown quarter %q", g.Title, g.Quarter),
				Items:       []string{g.ID},
			})
		}
	}

	taskIDs := make(map[string]int)
	for _, t := range plan.MonthlyTasks {
		taskIDs[t.ID]++

		if t.Month < 1 || t.Month > 12 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMonthOutOfRange,
				Description: fmt.Sprintf("Task %q has month %d outside 1-12", t.Task, t.Month),
				Items:       []string{t.ID},
			})
		}

		if t.GoalID != "" && plan.GoalByID(t.GoalID) == nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDanglingGoalRef,
				Description: fmt.Sprintf("Task %q references missing goal %q", t.Task, t.GoalID),
				Items:       []string{t.ID, t.GoalID},
			})
		}
	}
	for id, n := range taskIDs {
		if n > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTaskID,
				Description: fmt.Sprintf("Duplicate task id %q (%d tasks)", id, n),
				Items:       []string{id},
			})
		}
	}

	return result
}

// ValidateConfig checks question configs for duplicate identifiers.
// Question ids are checked across all categories, not just within one,
// so cross-category collisions surface here.
func (v *Validator) ValidateConfig(daily []models.DailyQuestion, cats []models.DeepCategory) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	keys := make(map[string]int)
	for _, q := range daily {
		keys[q.Key]++
	}
	for key, n := range keys {
		if n > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateQuestionKey,
				Description: fmt.Sprintf("Duplicate daily question key %q (%d questions)", key, n),
				Items:       []string{key},
			})
		}
	}

	catIDs := make(map[string]int)
	questionIDs := make(map[string]int)
	for _, cat := range cats {
		catIDs[cat.ID]++
		for _, q := range cat.Questions {
			questionIDs[q.ID]++
		}
	}
	for id, n := range catIDs {
		if n > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateCategoryID,
				Description: fmt.Sprintf("Duplicate category id %q (%d categories)", id, n),
				Items:       []string{id},
			})
		}
	}
	for id, n := range questionIDs {
		if n > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateQuestionID,
				Description: fmt.Sprintf("Duplicate deep question id %q (%d questions)", id, n),
				Items:       []string{id},
			})
		}
	}

	return result
}
