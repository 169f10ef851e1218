package formatter

import (
	"testing"

	"github.com/alexanderramin/roadtrack/internal/domain"
	"github.com/alexanderramin/roadtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatStatus_ShowsBothTracksAndCombined(t *testing.T) {
	pcb := testutil.NewTestRoadmap([]int{2, 2}, testutil.WithCompleted("1/1-1", "1/1-2"))
	aiml := testutil.NewTestRoadmap([]int{4})
	board := domain.Board{PCB: *pcb, AIML: *aiml}

	got := stripANSI(FormatStatus(board))

	assert.Contains(t, got, "LEARNING PROGRESS")
	assert.Contains(t, got, "PCB")
	assert.Contains(t, got, "AI/ML")
	assert.Contains(t, got, "Combined")
	assert.Contains(t, got, "2/4")
	assert.Contains(t, got, "0/4")
	assert.Contains(t, got, "2/8")
	assert.Contains(t, got, " 25%")
	assert.Contains(t, got, domain.Milestone(50))
	assert.Contains(t, got, domain.Milestone(0))
	assert.Contains(t, got, "PCB leads by 50 points.")
}

func TestFormatStatus_Tie(t *testing.T) {
	rm := testutil.NewTestRoadmap([]int{1})
	got := stripANSI(FormatStatus(domain.Board{PCB: *rm, AIML: *rm}))
	assert.Contains(t, got, "Both tracks are level.")
}
