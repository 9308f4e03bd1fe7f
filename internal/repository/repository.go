// Package repository provides CRUD access to the three record
// collections: the annual plan singleton, the daily review list and the
// deep review history. Every write replaces the whole value under its
// key, so the last writer wins atomically at key granularity.
package repository

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yuchenli/fupan/internal/kv"
	"github.com/yuchenli/fupan/internal/models"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	store kv.Store
}

func New(store kv.Store) *Repository {
	return &Repository{store: store}
}

func nowStamp() string {
	return time.Now().Format(time.RFC3339)
}

// --- Annual plan ---

// emptyPlan returns a fresh plan with no content and no timestamps;
// CreatedAt is set on first save.
func emptyPlan() models.AnnualPlan {
	return models.AnnualPlan{
		Goals:        []models.SMARTGoal{},
		MonthlyTasks: []models.MonthlyTask{},
	}
}

// LoadPlan returns the stored annual plan. The second return value
// reports whether a plan has ever been saved; when false the returned
// plan is the default-empty singleton.
func (r *Repository) LoadPlan() (models.AnnualPlan, bool) {
	plan, ok := kv.Get[models.AnnualPlan](r.store, kv.KeyAnnualPlan)
	if !ok {
		return emptyPlan(), false
	}
	if plan.Goals == nil {
		plan.Goals = []models.SMARTGoal{}
	}
	if plan.MonthlyTasks == nil {
		plan.MonthlyTasks = []models.MonthlyTask{}
	}
	return plan, true
}

// SavePlan persists the whole plan, stamping UpdatedAt and, on first
// save, CreatedAt. The stamped plan is returned.
func (r *Repository) SavePlan(plan models.AnnualPlan) models.AnnualPlan {
	now := nowStamp()
	if plan.CreatedAt == "" {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now
	kv.Set(r.store, kv.KeyAnnualPlan, plan)
	return plan
}

// ResetPlan replaces the plan with a fresh empty singleton carrying new
// timestamps.
func (r *Repository) ResetPlan() models.AnnualPlan {
	plan := emptyPlan()
	now := nowStamp()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	kv.Set(r.store, kv.KeyAnnualPlan, plan)
	return plan
}

// --- Daily review ---

// DailyRecords returns the stored daily review list. Order is insertion
// order: newly created records are prepended, updated ones keep their
// position.
func (r *Repository) DailyRecords() []models.DailyRecord {
	records, ok := kv.Get[[]models.DailyRecord](r.store, kv.KeyDailyReview)
	if !ok {
		return []models.DailyRecord{}
	}
	return records
}

// UpsertDaily saves the answers for one calendar date. An existing
// record for that date keeps its id, createdAt and list position and
// has its answers replaced; otherwise a new record is prepended.
func (r *Repository) UpsertDaily(date string, answers map[string]string) (models.DailyRecord, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}
	if answers == nil {
		answers = map[string]string{}
	}

	records := r.DailyRecords()
	for i, rec := range records {
		if rec.Date == date {
			records[i].Answers = answers
			kv.Set(r.store, kv.KeyDailyReview, records)
			return records[i], nil
		}
	}

	record := models.DailyRecord{
		ID:        uuid.New().String(),
		Date:      date,
		Answers:   answers,
		CreatedAt: nowStamp(),
	}
	records = append([]models.DailyRecord{record}, records...)
	kv.Set(r.store, kv.KeyDailyReview, records)
	return record, nil
}

// DailyRecordByDate looks up the record for one date.
func (r *Repository) DailyRecordByDate(date string) (models.DailyRecord, bool) {
	for _, rec := range r.DailyRecords() {
		if rec.Date == date {
			return rec, true
		}
	}
	return models.DailyRecord{}, false
}

// DailyDates returns the distinct dates having a record.
func (r *Repository) DailyDates() []string {
	records := r.DailyRecords()
	seen := make(map[string]bool, len(records))
	dates := make([]string, 0, len(records))
	for _, rec := range records {
		if !seen[rec.Date] {
			seen[rec.Date] = true
			dates = append(dates, rec.Date)
		}
	}
	return dates
}

// --- Deep review ---

// DeepReviews returns the deep review history, newest first.
func (r *Repository) DeepReviews() []models.DeepReviewRecord {
	records, ok := kv.Get[[]models.DeepReviewRecord](r.store, kv.KeyDeepReview)
	if !ok {
		return []models.DeepReviewRecord{}
	}
	return records
}

// CreateDeepReview prepends a new empty record titled for the current
// year and persists it immediately.
func (r *Repository) CreateDeepReview() models.DeepReviewRecord {
	now := nowStamp()
	record := models.DeepReviewRecord{
		ID:        uuid.New().String(),
		Title:     fmt.Sprintf("%d年深度复盘", time.Now().Year()),
		CreatedAt: now,
		UpdatedAt: now,
		Answers:   []models.DeepAnswer{},
	}

	records := append([]models.DeepReviewRecord{record}, r.DeepReviews()...)
	kv.Set(r.store, kv.KeyDeepReview, records)
	return record
}

// DeepReviewByID looks up one record by id.
func (r *Repository) DeepReviewByID(id string) (models.DeepReviewRecord, error) {
	for _, rec := range r.DeepReviews() {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.DeepReviewRecord{}, fmt.Errorf("deep review %s: %w", id, ErrNotFound)
}

// SaveDeepAnswers replaces the record's answer list with the given map
// and stamps UpdatedAt. The replacement is a full overwrite: answers
// for questions missing from the map are dropped.
func (r *Repository) SaveDeepAnswers(id string, answers map[string]string) (models.DeepReviewRecord, error) {
	records := r.DeepReviews()
	for i, rec := range records {
		if rec.ID != id {
			continue
		}

		list := make([]models.DeepAnswer, 0, len(answers))
		for questionID, answer := range answers {
			list = append(list, models.DeepAnswer{QuestionID: questionID, Answer: answer})
		}
		// Map iteration order is random; keep stored output stable.
		sort.Slice(list, func(a, b int) bool {
			return list[a].QuestionID < list[b].QuestionID
		})

		records[i].Answers = list
		records[i].UpdatedAt = nowStamp()
		kv.Set(r.store, kv.KeyDeepReview, records)
		return records[i], nil
	}

	return models.DeepReviewRecord{}, fmt.Errorf("deep review %s: %w", id, ErrNotFound)
}
