package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/yuchenli/fupan/internal/models"
	"github.com/yuchenli/fupan/internal/stats"
)

// HeatmapWindowDays is the dashboard's review heatmap width.
const HeatmapWindowDays = 30

// badgeLabels maps badge tags to their display text.
var badgeLabels = map[string]string{
	stats.BadgeWeekStreak:  "🔥 坚持一周",
	stats.BadgeMonthStreak: "⭐ 坚持一月",
	stats.BadgeCentury:     "💯 百日复盘",
	stats.BadgeActionTaker: "📈 行动派",
	stats.BadgePlanner:     "🎯 有计划",
	stats.BadgeDeepThinker: "🧠 深度思考者",
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	today := time.Now()
	plan, hasPlan := ctx.Records.LoadPlan()
	daily := ctx.Records.DailyRecords()
	deep := ctx.Records.DeepReviews()

	summary := stats.BuildSummary(plan, hasPlan, daily, deep, today)

	fmt.Println("数据追踪")
	fmt.Println()
	fmt.Printf("  连续复盘: %d 天\n", summary.Streak)
	fmt.Printf("  复盘总数: %d 天\n", summary.TotalDays)
	fmt.Printf("  任务完成: %d%% (%d/%d)\n", summary.TaskRate, summary.CompletedTasks, summary.TotalTasks)
	fmt.Printf("  深度复盘: %d 次\n", summary.DeepReviewCount)
	fmt.Println()

	month := currentMonth()
	done, total, rate := stats.MonthProgress(plan.MonthlyTasks, month)
	fmt.Printf("本月进度 (%d月): %d%% (已完成 %d / 共 %d 项)\n\n", int(month), rate, done, total)

	if hasPlan && len(plan.Goals) > 0 {
		dist := stats.QuarterlyDistribution(plan.Goals)
		fmt.Printf("年度目标分布 (共 %d 个目标):\n", summary.TotalGoals)
		for _, q := range models.Quarters {
			fmt.Printf("  %s: %d\n", q, dist[q])
		}
		fmt.Println()
	}

	fmt.Printf("复盘热力图 (最近%d天):\n", HeatmapWindowDays)
	fmt.Printf("  %s\n", renderHeatmap(ctx.Records.DailyDates(), today, HeatmapWindowDays))
	fmt.Printf("  %-*s今天\n", HeatmapWindowDays-2, fmt.Sprintf("%d天前", HeatmapWindowDays))
	fmt.Println()

	badges := stats.Badges(summary)
	fmt.Println("成就徽章:")
	if len(badges) == 0 {
		fmt.Println("  继续努力，解锁更多成就！")
		return nil
	}
	for _, tag := range badges {
		fmt.Printf("  %s\n", badgeLabels[tag])
	}

	return nil
}

// renderHeatmap draws one character per day, oldest first.
func renderHeatmap(dates []string, today time.Time, windowDays int) string {
	var b strings.Builder
	for _, day := range stats.Heatmap(dates, today, windowDays) {
		if day.HasRecord {
			b.WriteString("■")
		} else {
			b.WriteString("·")
		}
	}
	return b.String()
}
