package testutil

import (
	"fmt"

	"github.com/alexanderramin/roadtrack/internal/domain"
)

// RoadmapOption customizes a fixture roadmap after its phases are built.
type RoadmapOption func(*domain.Roadmap)

// WithCompleted marks tasks complete, addressed as "phaseID/taskID", and
// re-derives the stats.
func WithCompleted(refs ...string) RoadmapOption {
	return func(rm *domain.Roadmap) {
		for _, ref := range refs {
			for i := range rm.Phases {
				for j := range rm.Phases[i].Tasks {
					if fmt.Sprintf("%d/%s", rm.Phases[i].ID, rm.Phases[i].Tasks[j].ID) == ref {
						rm.Phases[i].Tasks[j].Completed = true
					}
				}
			}
		}
		rm.Stats = domain.ComputeStats(rm.Phases)
	}
}

// WithStats overrides the derived stats, for documents shipped with stale
// counters.
func WithStats(s domain.Stats) RoadmapOption {
	return func(rm *domain.Roadmap) {
		rm.Stats = s
	}
}

// NewTestRoadmap builds a roadmap with one phase per entry of taskCounts.
// Phase ids start at 1; task ids are "<phase>-<n>". Options run in order.
func NewTestRoadmap(taskCounts []int, opts ...RoadmapOption) *domain.Roadmap {
	rm := &domain.Roadmap{Phases: make([]domain.Phase, 0, len(taskCounts))}
	categories := []string{"Theory", "Practice", "Tools"}
	for i, n := range taskCounts {
		phase := domain.Phase{
			ID:       i + 1,
			Title:    fmt.Sprintf("Phase %d", i+1),
			Duration: fmt.Sprintf("Weeks %d-%d", i*4+1, i*4+4),
			Tasks:    make([]domain.Task, 0, n),
		}
		for j := 1; j <= n; j++ {
			phase.Tasks = append(phase.Tasks, domain.Task{
				ID:       fmt.Sprintf("%d-%d", i+1, j),
				Title:    fmt.Sprintf("Task %d.%d", i+1, j),
				Category: categories[(j-1)%len(categories)],
			})
		}
		rm.Phases = append(rm.Phases, phase)
	}
	rm.Stats = domain.ComputeStats(rm.Phases)
	for _, opt := range opts {
		opt(rm)
	}
	return rm
}

// ScenarioRoadmap is the two-phase roadmap used across packages: phase 1 has
// two tasks with "1-1" completed, phase 2 has three pending tasks.
func ScenarioRoadmap() *domain.Roadmap {
	return NewTestRoadmap([]int{2, 3}, WithCompleted("1/1-1"))
}
