package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/roadtrack/internal/domain"
)

const statusProgressBarWidth = 20

// FormatStatus renders both tracks side by side with the combined figure and
// each track's milestone line.
func FormatStatus(board domain.Board) string {
	var b strings.Builder
	cmp := board.Comparison()

	headers := []string{"TRACK", "PROGRESS", "TASKS"}
	rows := make([][]string, 0, 3)
	for _, t := range domain.AllTracks() {
		s := board.Get(t).Stats
		rows = append(rows, []string{
			TrackBadge(t),
			RenderProgress(s.Progress, statusProgressBarWidth),
			RenderCount(s.CompletedTasks, s.TotalTasks),
		})
	}
	rows = append(rows, []string{
		Bold("Combined"),
		RenderProgress(cmp.CombinedProgress, statusProgressBarWidth),
		RenderCount(cmp.CompletedTasks, cmp.TotalTasks),
	})
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	for _, t := range domain.AllTracks() {
		s := board.Get(t).Stats
		fmt.Fprintf(&b, "%s  %s\n", TrackBadge(t), domain.Milestone(s.Progress))
	}

	b.WriteString("\n")
	b.WriteString(Dim(leaderLine(cmp)) + "\n")

	return RenderBox("Learning Progress", b.String())
}

func leaderLine(cmp domain.Comparison) string {
	if cmp.Leader == "" {
		return "Both tracks are level."
	}
	gap := cmp.PCB.Progress - cmp.AIML.Progress
	if gap < 0 {
		gap = -gap
	}
	return fmt.Sprintf("%s leads by %d %s.", cmp.Leader.Label(), gap, Plural(gap, "point"))
}
