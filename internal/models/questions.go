package models

// DailyQuestion is one user-editable question on the daily review form.
// Key is the identifier answers are stored under; it is user-chosen and
// not validated against existing records.
type DailyQuestion struct {
	Key         string `json:"key"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
}

// DeepQuestion is one question inside a deep review category.
type DeepQuestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// DeepCategory groups deep review questions. Color and BgColor are
// opaque display-style strings carried for the presentation layer.
type DeepCategory struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Color     string         `json:"color"`
	BgColor   string         `json:"bgColor"`
	Questions []DeepQuestion `json:"questions"`
}

// QuestionCount returns the total question count across categories.
func QuestionCount(cats []DeepCategory) int {
	n := 0
	for _, c := range cats {
		n += len(c.Questions)
	}
	return n
}
