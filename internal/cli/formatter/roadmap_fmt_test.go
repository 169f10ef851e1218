package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/roadtrack/internal/domain"
	"github.com/alexanderramin/roadtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatRoadmap_AllPhases(t *testing.T) {
	rm := testutil.ScenarioRoadmap()

	got := stripANSI(FormatRoadmap(domain.TrackPCB, rm, 0))

	assert.Contains(t, got, domain.TrackPCB.Title())
	assert.Contains(t, got, "PHASE 1: PHASE 1")
	assert.Contains(t, got, "PHASE 2: PHASE 2")
	assert.Contains(t, got, "[x] 1-1")
	assert.Contains(t, got, "[ ] 2-3")
	assert.Contains(t, got, "1 of 5 tasks")
}

func TestFormatRoadmap_SinglePhase(t *testing.T) {
	rm := testutil.ScenarioRoadmap()

	got := stripANSI(FormatRoadmap(domain.TrackAIML, rm, 2))

	assert.NotContains(t, got, "PHASE 1:")
	assert.Contains(t, got, "PHASE 2:")
	assert.NotContains(t, got, "1-1")
}

func TestFormatRoadmap_GroupsByCategory(t *testing.T) {
	rm := &domain.Roadmap{Phases: []domain.Phase{{
		ID: 1, Title: "Basics", Duration: "Weeks 1-2",
		Tasks: []domain.Task{
			{ID: "a", Title: "Ohm", Category: "Theory"},
			{ID: "b", Title: "Solder", Category: "Practice"},
			{ID: "c", Title: "Kirchhoff", Category: "Theory"},
		},
	}}}
	rm.Stats = domain.ComputeStats(rm.Phases)

	got := stripANSI(FormatRoadmap(domain.TrackPCB, rm, 0))

	theory := strings.Index(got, "Theory")
	practice := strings.Index(got, "Practice")
	kirchhoff := strings.Index(got, "Kirchhoff")
	assert.Less(t, theory, kirchhoff)
	assert.Less(t, kirchhoff, practice)
}

func TestFormatRoadmap_EmptyPhase(t *testing.T) {
	rm := &domain.Roadmap{Phases: []domain.Phase{{ID: 1, Title: "Empty", Tasks: []domain.Task{}}}}
	got := stripANSI(FormatRoadmap(domain.TrackPCB, rm, 0))
	assert.Contains(t, got, "No tasks in this phase.")
	assert.Contains(t, got, "0/0")
}

func TestFormatToggle(t *testing.T) {
	task := domain.Task{ID: "1-2", Title: "Read datasheet", Completed: true}
	got := stripANSI(FormatToggle(domain.TrackPCB, task, domain.Stats{TotalTasks: 4, CompletedTasks: 1, Progress: 25}))
	assert.Contains(t, got, "Completed Read datasheet")
	assert.Contains(t, got, "1/4")

	task.Completed = false
	got = stripANSI(FormatToggle(domain.TrackPCB, task, domain.Stats{TotalTasks: 4}))
	assert.Contains(t, got, "Reopened Read datasheet")
}

func TestFormatReset(t *testing.T) {
	got := stripANSI(FormatReset(domain.TrackAIML, domain.Stats{TotalTasks: 26}))
	assert.Equal(t, "AI/ML progress reset. 26 tasks pending.\n", got)
}
