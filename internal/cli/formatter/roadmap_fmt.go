package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/roadtrack/internal/domain"
)

const phaseProgressBarWidth = 16

// FormatRoadmap renders a track's phases with per-phase progress and tasks
// grouped by category. When phaseID is non-zero only that phase is shown.
func FormatRoadmap(track domain.Track, rm *domain.Roadmap, phaseID int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n",
		TrackStyle(track).Bold(true).Render(track.Title()),
		RenderProgress(rm.Stats.Progress, statusProgressBarWidth),
		Dim(fmt.Sprintf("%d of %d tasks", rm.Stats.CompletedTasks, rm.Stats.TotalTasks)),
	)

	for _, p := range rm.Phases {
		if phaseID != 0 && p.ID != phaseID {
			continue
		}
		b.WriteString("\n")
		b.WriteString(formatPhase(p))
	}

	return b.String()
}

func formatPhase(p domain.Phase) string {
	var b strings.Builder
	s := domain.PhaseProgress(p)

	b.WriteString(Header(fmt.Sprintf("Phase %d: %s", p.ID, p.Title)) + "\n")
	fmt.Fprintf(&b, "%s  %s  %s\n",
		Dim(p.Duration),
		RenderProgress(s.Progress, phaseProgressBarWidth),
		RenderCount(s.CompletedTasks, s.TotalTasks),
	)

	if len(p.Tasks) == 0 {
		b.WriteString(Dim("  No tasks in this phase.") + "\n")
		return b.String()
	}

	for _, g := range domain.GroupByCategory(p) {
		fmt.Fprintf(&b, "  %s\n", StyleBlue.Render(g.Category))
		for _, t := range g.Tasks {
			title := t.Title
			if t.Completed {
				title = Dim(title)
			}
			fmt.Fprintf(&b, "    %s %s  %s\n", TaskMark(t.Completed), Dim(t.ID), title)
		}
	}
	return b.String()
}

// FormatToggle reports the outcome of a toggle against the new track totals.
func FormatToggle(track domain.Track, task domain.Task, stats domain.Stats) string {
	verb := "Reopened"
	if task.Completed {
		verb = "Completed"
	}
	return fmt.Sprintf("%s %s %s  %s\n%s %s\n",
		TaskMark(task.Completed),
		verb,
		Bold(task.Title),
		Dim(task.ID),
		TrackBadge(track),
		RenderProgress(stats.Progress, statusProgressBarWidth)+"  "+RenderCount(stats.CompletedTasks, stats.TotalTasks),
	)
}

// FormatReset confirms that a track was cleared.
func FormatReset(track domain.Track, stats domain.Stats) string {
	return fmt.Sprintf("%s progress reset. %d %s pending.\n",
		TrackBadge(track), stats.TotalTasks, Plural(stats.TotalTasks, "task"))
}

// FormatImport confirms an imported document.
func FormatImport(track domain.Track, rm *domain.Roadmap) string {
	return fmt.Sprintf("Imported %s roadmap: %d %s, %d of %d tasks completed (%d%%).\n",
		TrackBadge(track),
		len(rm.Phases), Plural(len(rm.Phases), "phase"),
		rm.Stats.CompletedTasks, rm.Stats.TotalTasks, rm.Stats.Progress,
	)
}
