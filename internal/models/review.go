package models

// DailyRecord holds one calendar day's review answers, keyed by the
// question key from the daily question config. One record per date.
type DailyRecord struct {
	ID        string            `json:"id"`
	Date      string            `json:"date"` // YYYY-MM-DD format
	Answers   map[string]string `json:"answers"`
	CreatedAt string            `json:"createdAt"` // RFC3339 timestamp
}

// DeepAnswer links a free-text answer to a deep review question. The
// question id is a soft reference; answers to removed questions persist.
type DeepAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// DeepReviewRecord is one deep review session. Multiple records are
// kept as history, newest first.
type DeepReviewRecord struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	CreatedAt string       `json:"createdAt"` // RFC3339 timestamp
	UpdatedAt string       `json:"updatedAt"` // RFC3339 timestamp
	Answers   []DeepAnswer `json:"answers"`
}

// AnswerMap expands the stored answer list into a questionId keyed map.
func (r *DeepReviewRecord) AnswerMap() map[string]string {
	m := make(map[string]string, len(r.Answers))
	for _, a := range r.Answers {
		m[a.QuestionID] = a.Answer
	}
	return m
}
