package domain

import "math"

// Task is the atomic unit of progress within a phase.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
	Category  string `json:"category" yaml:"category"`
}

// Phase is an ordered stage of a roadmap.
type Phase struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Duration string `json:"duration" yaml:"duration"`
	Tasks    []Task `json:"tasks" yaml:"tasks"`
}

// Stats are the aggregate counters derived from a roadmap's tasks.
type Stats struct {
	TotalTasks     int `json:"totalTasks" yaml:"totalTasks"`
	CompletedTasks int `json:"completedTasks" yaml:"completedTasks"`
	Progress       int `json:"progress" yaml:"progress"`
}

// Roadmap is the full phase/task tree of one track plus its stats.
type Roadmap struct {
	Phases []Phase `json:"phases" yaml:"phases"`
	Stats  Stats   `json:"stats" yaml:"stats"`
}

// Percent returns round(100*done/total), or 0 when total is zero.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// ComputeStats counts tasks across phases.
func ComputeStats(phases []Phase) Stats {
	var s Stats
	for _, p := range phases {
		for _, t := range p.Tasks {
			s.TotalTasks++
			if t.Completed {
				s.CompletedTasks++
			}
		}
	}
	s.Progress = Percent(s.CompletedTasks, s.TotalTasks)
	return s
}

// Clone returns a deep copy of the roadmap. Empty task and phase slices stay
// empty rather than becoming nil so the JSON shape is preserved.
func (r Roadmap) Clone() Roadmap {
	out := Roadmap{Stats: r.Stats}
	if r.Phases == nil {
		return out
	}
	out.Phases = make([]Phase, len(r.Phases))
	for i, p := range r.Phases {
		out.Phases[i] = p
		if p.Tasks != nil {
			out.Phases[i].Tasks = append(make([]Task, 0, len(p.Tasks)), p.Tasks...)
		}
	}
	return out
}

// Normalized returns a deep copy whose phase and task slices are non-nil. A
// nil slice and an empty one encode to the same JSON array, so a roadmap read
// back from storage is always in this form.
func (r Roadmap) Normalized() Roadmap {
	out := r.Clone()
	if out.Phases == nil {
		out.Phases = []Phase{}
	}
	for i := range out.Phases {
		if out.Phases[i].Tasks == nil {
			out.Phases[i].Tasks = []Task{}
		}
	}
	return out
}

// StatsConsistent reports whether the stored stats match the task set.
func (r Roadmap) StatsConsistent() bool {
	return r.Stats == ComputeStats(r.Phases)
}

// FindTask locates the task identified by (phaseID, taskID).
func (r Roadmap) FindTask(phaseID int, taskID string) (Task, bool) {
	for _, p := range r.Phases {
		if p.ID != phaseID {
			continue
		}
		for _, t := range p.Tasks {
			if t.ID == taskID {
				return t, true
			}
		}
	}
	return Task{}, false
}

// FindPhase returns the phase with the given id.
func (r Roadmap) FindPhase(phaseID int) (Phase, bool) {
	for _, p := range r.Phases {
		if p.ID == phaseID {
			return p, true
		}
	}
	return Phase{}, false
}

// ToggleTask returns a copy of rm with the completion flag of the matching
// task inverted and stats recomputed. When nothing matches, the copy is
// returned untouched (stats included) and changed is false.
func ToggleTask(rm Roadmap, phaseID int, taskID string) (out Roadmap, changed bool) {
	out = rm.Clone()
	for i := range out.Phases {
		if out.Phases[i].ID != phaseID {
			continue
		}
		for j := range out.Phases[i].Tasks {
			if out.Phases[i].Tasks[j].ID == taskID {
				out.Phases[i].Tasks[j].Completed = !out.Phases[i].Tasks[j].Completed
				changed = true
			}
		}
	}
	if changed {
		out.Stats = ComputeStats(out.Phases)
	}
	return out, changed
}

// ResetAll returns a copy of rm with every task pending. TotalTasks is kept
// from the input stats.
func ResetAll(rm Roadmap) Roadmap {
	out := rm.Clone()
	for i := range out.Phases {
		for j := range out.Phases[i].Tasks {
			out.Phases[i].Tasks[j].Completed = false
		}
	}
	out.Stats = Stats{TotalTasks: rm.Stats.TotalTasks}
	return out
}
