package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/yuchenli/fupan/internal/models"
	"github.com/yuchenli/fupan/internal/stats"
)

// heatmapDays is the dashboard heatmap width.
const heatmapDays = 30

var tabTitles = []string{"数据", "每日复盘", "深度复盘"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = docStyle.Render(m.viewDashboard())
	case StateDaily:
		content = docStyle.Render(m.viewDaily())
	case StateDeep:
		content = docStyle.Render(m.viewDeep())
	case StateEditingDaily, StateEditingDeep:
		return m.form.View()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		sections = append(sections, statusStyle.Render("  "+m.statusMsg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	today := time.Now()
	plan, hasPlan := m.records.LoadPlan()
	daily := m.records.DailyRecords()
	deep := m.records.DeepReviews()
	summary := stats.BuildSummary(plan, hasPlan, daily, deep, today)

	var b strings.Builder
	b.WriteString(titleStyle.Render("数据追踪"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "连续复盘 %d 天  |  复盘总数 %d 天  |  任务完成 %d%%  |  深度复盘 %d 次\n\n",
		summary.Streak, summary.TotalDays, summary.TaskRate, summary.DeepReviewCount)

	b.WriteString(titleStyle.Render(fmt.Sprintf("复盘热力图 (最近%d天)", heatmapDays)))
	b.WriteString("\n")
	for _, day := range stats.Heatmap(m.records.DailyDates(), today, heatmapDays) {
		if day.HasRecord {
			b.WriteString(heatFilledStyle.Render("■"))
		} else {
			b.WriteString(heatEmptyStyle.Render("·"))
		}
	}
	b.WriteString("\n\n")

	if hasPlan && len(plan.Goals) > 0 {
		dist := stats.QuarterlyDistribution(plan.Goals)
		b.WriteString(titleStyle.Render("年度目标分布"))
		b.WriteString("\n")
		for _, q := range models.Quarters {
			fmt.Fprintf(&b, "%s: %d  ", q, dist[q])
		}
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("成就徽章"))
	b.WriteString("\n")
	badges := stats.Badges(summary)
	if len(badges) == 0 {
		b.WriteString(mutedStyle.Render("继续努力，解锁更多成就！"))
	} else {
		b.WriteString(strings.Join(badgeLabels(badges), "  "))
	}

	return b.String()
}

func (m Model) viewDaily() string {
	records := m.records.DailyRecords()

	var b strings.Builder
	b.WriteString(titleStyle.Render("每日复盘"))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(mutedStyle.Render("还没有复盘记录，按 e 开始今天的复盘。"))
		return b.String()
	}

	dates := make([]string, 0, len(records))
	byDate := make(map[string]int, len(records))
	for _, rec := range records {
		dates = append(dates, rec.Date)
		n := 0
		for _, a := range rec.Answers {
			if a != "" {
				n++
			}
		}
		byDate[rec.Date] = n
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	limit := len(dates)
	if limit > 10 {
		limit = 10
	}
	for _, date := range dates[:limit] {
		fmt.Fprintf(&b, "%s  %d 条回答\n", date, byDate[date])
	}
	if len(dates) > limit {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("... 另有 %d 条\n", len(dates)-limit)))
	}

	return b.String()
}

func (m Model) viewDeep() string {
	reviews := m.records.DeepReviews()
	total := models.QuestionCount(m.questions.Deep())

	var b strings.Builder
	b.WriteString(titleStyle.Render("深度复盘"))
	b.WriteString("\n\n")

	if len(reviews) == 0 {
		b.WriteString(mutedStyle.Render("还没有深度复盘，按 n 新建一份。"))
		return b.String()
	}

	for i, rec := range reviews {
		answered := 0
		for _, a := range rec.Answers {
			if a.Answer != "" {
				answered++
			}
		}
		line := fmt.Sprintf("%s  %s  %d/%d", rec.CreatedAt[:10], rec.Title, answered, total)
		if i == m.deepCursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func badgeLabels(tags []string) []string {
	labels := map[string]string{
		stats.BadgeWeekStreak:  "🔥 坚持一周",
		stats.BadgeMonthStreak: "⭐ 坚持一月",
		stats.BadgeCentury:     "💯 百日复盘",
		stats.BadgeActionTaker: "📈 行动派",
		stats.BadgePlanner:     "🎯 有计划",
		stats.BadgeDeepThinker: "🧠 深度思考者",
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, labels[tag])
	}
	return out
}
