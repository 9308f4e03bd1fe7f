package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/yuchenli/fupan/internal/models"
	"github.com/yuchenli/fupan/internal/questions"
	"github.com/yuchenli/fupan/internal/repository"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateDaily
	StateDeep
	StateEditingDaily
	StateEditingDeep
)

// tabCount covers the cyclable tabs; editing states sit outside the cycle.
const tabCount = 3

type Model struct {
	records   *repository.Repository
	questions *questions.Store

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	form        *huh.Form
	dailyDate   string
	dailyValues []*string
	deepID      string
	deepValues  map[string]*string

	deepCursor int
	statusMsg  string
	quitting   bool
	width      int
	height     int
}

func NewModel(records *repository.Repository, qs *questions.Store) Model {
	return Model{
		records:   records,
		questions: qs,
		state:     StateDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateDaily:
		keys = append(keys, m.keys.Edit)
	case StateDeep:
		keys = append(keys, m.keys.New, m.keys.Enter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateDaily:
		actions = []key.Binding{m.keys.Edit}
	case StateDeep:
		actions = []key.Binding{m.keys.New}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// startDailyForm builds a huh form over the configured daily questions,
// prefilled with today's answers when a record exists.
func (m *Model) startDailyForm() tea.Cmd {
	m.dailyDate = time.Now().Format("2006-01-02")

	existing := map[string]string{}
	if rec, ok := m.records.DailyRecordByDate(m.dailyDate); ok {
		existing = rec.Answers
	}

	daily := m.questions.Daily()
	m.dailyValues = make([]*string, len(daily))

	fields := make([]huh.Field, 0, len(daily))
	for i, q := range daily {
		value := existing[q.Key]
		m.dailyValues[i] = &value
		fields = append(fields, huh.NewText().
			Title(q.Question).
			Placeholder(q.Placeholder).
			Value(m.dailyValues[i]))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...))
	m.previousState = m.state
	m.state = StateEditingDaily
	return m.form.Init()
}

// saveDailyForm persists the completed daily form.
func (m *Model) saveDailyForm() {
	daily := m.questions.Daily()
	answers := make(map[string]string)
	for i, q := range daily {
		if i < len(m.dailyValues) && *m.dailyValues[i] != "" {
			answers[q.Key] = *m.dailyValues[i]
		}
	}

	if _, err := m.records.UpsertDaily(m.dailyDate, answers); err != nil {
		m.statusMsg = "Save failed: " + err.Error()
		return
	}
	m.statusMsg = "Saved review for " + m.dailyDate
}

// startDeepForm opens the answer form for one deep review, grouped by
// category the way the question config lays them out.
func (m *Model) startDeepForm(rec models.DeepReviewRecord) tea.Cmd {
	m.deepID = rec.ID
	m.deepValues = make(map[string]*string)
	answers := rec.AnswerMap()

	var groups []*huh.Group
	for _, cat := range m.questions.Deep() {
		if len(cat.Questions) == 0 {
			continue
		}
		fields := make([]huh.Field, 0, len(cat.Questions)+1)
		fields = append(fields, huh.NewNote().Title(cat.Name))
		for _, q := range cat.Questions {
			value := answers[q.ID]
			m.deepValues[q.ID] = &value
			fields = append(fields, huh.NewText().
				Title(q.Text).
				Value(m.deepValues[q.ID]))
		}
		groups = append(groups, huh.NewGroup(fields...))
	}

	if len(groups) == 0 {
		m.statusMsg = "No deep review questions configured."
		return nil
	}

	m.form = huh.NewForm(groups...)
	m.previousState = m.state
	m.state = StateEditingDeep
	return m.form.Init()
}

// saveDeepForm persists the completed deep review form.
func (m *Model) saveDeepForm() {
	answers := make(map[string]string)
	for questionID, value := range m.deepValues {
		if *value != "" {
			answers[questionID] = *value
		}
	}

	if _, err := m.records.SaveDeepAnswers(m.deepID, answers); err != nil {
		m.statusMsg = "Save failed: " + err.Error()
		return
	}
	m.statusMsg = "Deep review saved."
}
