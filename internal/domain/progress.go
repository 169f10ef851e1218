package domain

// CategoryGroup is a run of tasks sharing one category inside a phase.
type CategoryGroup struct {
	Category string
	Tasks    []Task
}

// PhaseProgress returns the completion counters of a single phase.
func PhaseProgress(p Phase) Stats {
	return ComputeStats([]Phase{p})
}

// GroupByCategory groups a phase's tasks by category. Groups keep the order in
// which each category first appears; tasks keep their phase order.
func GroupByCategory(p Phase) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, t := range p.Tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(groups)
			index[t.Category] = i
			groups = append(groups, CategoryGroup{Category: t.Category})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	return groups
}

// Comparison summarizes both tracks side by side.
type Comparison struct {
	PCB              Stats
	AIML             Stats
	CombinedProgress int
	CompletedTasks   int
	TotalTasks       int
	// Leader is the track with the higher progress, empty on a tie.
	Leader Track
}

// Compare builds the cross-track summary. Combined progress is the rounded
// mean of the two track percentages, not a task-weighted figure.
func Compare(pcb, aiml Stats) Comparison {
	c := Comparison{
		PCB:              pcb,
		AIML:             aiml,
		CombinedProgress: Percent(pcb.Progress+aiml.Progress, 200),
		CompletedTasks:   pcb.CompletedTasks + aiml.CompletedTasks,
		TotalTasks:       pcb.TotalTasks + aiml.TotalTasks,
	}
	switch {
	case pcb.Progress > aiml.Progress:
		c.Leader = TrackPCB
	case aiml.Progress > pcb.Progress:
		c.Leader = TrackAIML
	}
	return c
}

// Milestone returns the encouragement line for a progress percentage.
func Milestone(progress int) string {
	switch {
	case progress <= 0:
		return "Start your learning journey today! Complete your first task to begin."
	case progress < 25:
		return "Great start! Keep going at your own pace."
	case progress < 50:
		return "Good progress! You're building a solid foundation."
	case progress < 75:
		return "Excellent! You're halfway through the roadmap."
	case progress < 100:
		return "Almost there! You're mastering the track."
	default:
		return "Congratulations! You've completed the entire roadmap!"
	}
}
