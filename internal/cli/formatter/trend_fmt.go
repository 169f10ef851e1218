package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/roadtrack/internal/service"
)

const trendBarWidth = 20

// FormatTrend renders the tasks completed per day over the last week for
// every track, with the weekly total and the rounded daily average.
// Bars are scaled to the track's own peak.
func FormatTrend(trend *service.WeeklyTrend) string {
	var b strings.Builder

	for i, tt := range trend.Tracks {
		if i > 0 {
			b.WriteString("\n")
		}
		title := TrackBadge(tt.Track)
		if tt.Sample {
			title += "  " + StyleYellow.Render("(sample data, no progress recorded yet)")
		}
		b.WriteString(title + "\n")

		peak := 0
		for _, p := range tt.Points {
			peak = max(peak, p.CompletedTasks)
		}

		rows := make([][]string, 0, len(tt.Points))
		for _, p := range tt.Points {
			rows = append(rows, []string{
				p.Label,
				fmt.Sprintf("%d", p.CompletedTasks),
				trendBar(p.CompletedTasks, peak, tt),
			})
		}
		b.WriteString(RenderTable([]string{"DAY", "COMPLETED", ""}, rows))

		total := tt.Total()
		summary := fmt.Sprintf("%d %s this week, avg daily %d", total, Plural(total, "task"), tt.AvgDaily())
		b.WriteString(Dim(summary) + "\n")
	}

	return RenderBox("Weekly Trend", b.String())
}

func trendBar(v, peak int, tt service.TrackTrend) string {
	if peak <= 0 || v <= 0 {
		return ""
	}
	n := max(v*trendBarWidth/peak, 1)
	return TrackStyle(tt.Track).Render(strings.Repeat(filledBlock, n))
}
