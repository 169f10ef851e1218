package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseProgress(t *testing.T) {
	rm := twoPhaseRoadmap()
	assert.Equal(t, Stats{TotalTasks: 2, CompletedTasks: 1, Progress: 50}, PhaseProgress(rm.Phases[0]))
	assert.Equal(t, Stats{TotalTasks: 3}, PhaseProgress(rm.Phases[1]))
	assert.Equal(t, Stats{}, PhaseProgress(Phase{ID: 9}))
}

func TestGroupByCategory_FirstAppearanceOrder(t *testing.T) {
	groups := GroupByCategory(twoPhaseRoadmap().Phases[1])
	require.Len(t, groups, 2)
	assert.Equal(t, "Tools", groups[0].Category)
	assert.Equal(t, "Practice", groups[1].Category)
	require.Len(t, groups[0].Tasks, 2)
	assert.Equal(t, "2-1", groups[0].Tasks[0].ID)
	assert.Equal(t, "2-3", groups[0].Tasks[1].ID)
}

func TestCompare(t *testing.T) {
	c := Compare(Stats{TotalTasks: 10, CompletedTasks: 3, Progress: 30}, Stats{TotalTasks: 20, CompletedTasks: 5, Progress: 25})
	assert.Equal(t, 28, c.CombinedProgress)
	assert.Equal(t, 8, c.CompletedTasks)
	assert.Equal(t, 30, c.TotalTasks)
	assert.Equal(t, TrackPCB, c.Leader)

	tie := Compare(Stats{Progress: 40}, Stats{Progress: 40})
	assert.Equal(t, Track(""), tie.Leader)
	assert.Equal(t, 40, tie.CombinedProgress)

	assert.Equal(t, TrackAIML, Compare(Stats{Progress: 1}, Stats{Progress: 2}).Leader)
}

func TestMilestone_Bands(t *testing.T) {
	assert.Contains(t, Milestone(0), "Start your learning journey")
	assert.Contains(t, Milestone(24), "Great start")
	assert.Contains(t, Milestone(25), "solid foundation")
	assert.Contains(t, Milestone(50), "halfway")
	assert.Contains(t, Milestone(99), "Almost there")
	assert.Contains(t, Milestone(100), "Congratulations")
}

func TestParseTrack(t *testing.T) {
	for in, want := range map[string]Track{"pcb": TrackPCB, "PCB": TrackPCB, "aiml": TrackAIML, "AI/ML": TrackAIML, " ai-ml ": TrackAIML} {
		got, err := ParseTrack(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseTrack("rust")
	assert.ErrorIs(t, err, ErrUnknownTrack)
}

func TestTrack_KeysAndFiles(t *testing.T) {
	assert.Equal(t, "pcbRoadmap", TrackPCB.StorageKey())
	assert.Equal(t, "aimlRoadmap", TrackAIML.StorageKey())
	assert.Equal(t, "roadmap.json", TrackPCB.CatalogFile())
	assert.Equal(t, "aiml-roadmap.json", TrackAIML.CatalogFile())
	assert.Panics(t, func() { _ = Track("x").StorageKey() })
}

func TestBoard_WithReturnsCopy(t *testing.T) {
	var b Board
	rm := twoPhaseRoadmap()
	updated := b.With(TrackAIML, rm)
	assert.Equal(t, rm, updated.Get(TrackAIML))
	assert.Empty(t, b.AIML.Phases)
	assert.Equal(t, TrackAIML, updated.Comparison().Leader)
}
