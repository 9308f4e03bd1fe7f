package models

type Quarter string

const (
	QuarterQ1 Quarter = "Q1"
	QuarterQ2 Quarter = "Q2"
	QuarterQ3 Quarter = "Q3"
	QuarterQ4 Quarter = "Q4"
)

// Quarters lists the four valid quarters in display order.
var Quarters = []Quarter{QuarterQ1, QuarterQ2, QuarterQ3, QuarterQ4}

// Valid reports whether q is one of the four known quarters. Goals with
// any other value stay in storage but are ignored by statistics.
func (q Quarter) Valid() bool {
	switch q {
	case QuarterQ1, QuarterQ2, QuarterQ3, QuarterQ4:
		return true
	}
	return false
}

// KPT is the Keep/Problem/Try reflection for the year.
type KPT struct {
	Keep    string `json:"keep"`
	Problem string `json:"problem"`
	Try     string `json:"try"`
}

// SMARTGoal is one annual goal, assigned to a quarter.
type SMARTGoal struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Specific   string  `json:"specific"`
	Measurable string  `json:"measurable"`
	Achievable string  `json:"achievable"`
	Relevant   string  `json:"relevant"`
	TimeBound  string  `json:"timeBound"`
	Quarter    Quarter `json:"quarter"`
}

// MonthlyTask breaks a goal down into a concrete task for one month.
// GoalID is a soft reference: deleting the goal leaves the task behind.
type MonthlyTask struct {
	ID        string `json:"id"`
	GoalID    string `json:"goalId"`
	Month     int    `json:"month"` // 1-12
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// AnnualPlan is the single per-device plan. It is saved and loaded as a
// whole object; UpdatedAt is refreshed on every save.
type AnnualPlan struct {
	KPT          KPT           `json:"kpt"`
	Goals        []SMARTGoal   `json:"goals"`
	MonthlyTasks []MonthlyTask `json:"monthlyTasks"`
	CreatedAt    string        `json:"createdAt"` // RFC3339 timestamp
	UpdatedAt    string        `json:"updatedAt"` // RFC3339 timestamp
}

// GoalByID returns the goal with the given id, or nil when the id is
// unknown (including the dangling-reference case from MonthlyTask).
func (p *AnnualPlan) GoalByID(id string) *SMARTGoal {
	for i := range p.Goals {
		if p.Goals[i].ID == id {
			return &p.Goals[i]
		}
	}
	return nil
}
