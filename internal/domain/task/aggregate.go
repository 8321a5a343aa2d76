package task

import (
	"math"
	"sort"
)

// StatusCounts is the status distribution over a task snapshot.
type StatusCounts struct {
	Pending    int
	InProgress int
	Completed  int
	Total      int
}

// CountsByStatus tallies the status distribution. Statuses outside the enum
// count toward Total only; the engine treats any stored value as valid input.
func CountsByStatus(tasks []Task) StatusCounts {
	var counts StatusCounts
	for _, t := range tasks {
		switch t.Status {
		case StatusPending:
			counts.Pending++
		case StatusInProgress:
			counts.InProgress++
		case StatusCompleted:
			counts.Completed++
		}
		counts.Total++
	}
	return counts
}

// CompletionPercentage is the rounded completed/total ratio, 0 for an empty
// snapshot.
func CompletionPercentage(tasks []Task) int {
	counts := CountsByStatus(tasks)
	if counts.Total == 0 {
		return 0
	}
	return int(math.Round(float64(counts.Completed) / float64(counts.Total) * 100))
}

// ProjectGroup is one project's tasks. Groups are ordered by the first
// occurrence of each project in the input.
type ProjectGroup struct {
	Name  string
	Tasks []Task
}

// GroupByProject buckets tasks under their project label, with empty labels
// collected under NoProject.
func GroupByProject(tasks []Task) []ProjectGroup {
	index := make(map[string]int)
	var groups []ProjectGroup

	for _, t := range tasks {
		name := t.Project
		if name == "" {
			name = NoProject
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, ProjectGroup{Name: name})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}

	return groups
}

// ProjectProgress summarizes one project group for the overview cards.
type ProjectProgress struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
	Progress  int    `json:"progress"`
}

// ProgressByProject computes per-project rollups in group order.
func ProgressByProject(tasks []Task) []ProjectProgress {
	groups := GroupByProject(tasks)
	progress := make([]ProjectProgress, 0, len(groups))
	for _, g := range groups {
		counts := CountsByStatus(g.Tasks)
		progress = append(progress, ProjectProgress{
			Name:      g.Name,
			Total:     counts.Total,
			Completed: counts.Completed,
			Pending:   counts.Pending,
			Progress:  CompletionPercentage(g.Tasks),
		})
	}
	return progress
}

func statusRank(s Status) int {
	switch s {
	case StatusPending:
		return 0
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	}
	return 3
}

// SortForDisplay orders a copy of the snapshot for display lists: pending
// first, then in progress, then completed, with earlier due dates first
// inside each rank. Tasks without a due date keep their relative order.
func SortForDisplay(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := statusRank(sorted[i].Status), statusRank(sorted[j].Status)
		if ri != rj {
			return ri < rj
		}
		if sorted[i].DueDate != "" && sorted[j].DueDate != "" {
			return sorted[i].DueDate < sorted[j].DueDate
		}
		return false
	})

	return sorted
}

// FilterByAssignees keeps tasks assigned to any of the given emails. Used for
// department scoping with a caller-supplied employee lookup; tasks assigned
// to unknown emails simply fall outside every department.
func FilterByAssignees(tasks []Task, emails map[string]bool) []Task {
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if emails[t.AssignedTo] {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
