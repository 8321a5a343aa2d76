package task

import (
	"reflect"
	"testing"
)

func TestCountsByStatus(t *testing.T) {
	tasks := []Task{
		{Status: StatusPending},
		{Status: StatusCompleted},
		{Status: StatusInProgress},
		{Status: StatusPending},
		{Status: "archived"}, // unknown status still counts toward total
	}

	got := CountsByStatus(tasks)
	want := StatusCounts{Pending: 2, InProgress: 1, Completed: 1, Total: 5}
	if got != want {
		t.Errorf("CountsByStatus = %+v, want %+v", got, want)
	}
}

func TestCompletionPercentage(t *testing.T) {
	if got := CompletionPercentage(nil); got != 0 {
		t.Errorf("CompletionPercentage(nil) = %d, want 0", got)
	}

	half := []Task{{Status: StatusCompleted}, {Status: StatusPending}}
	if got := CompletionPercentage(half); got != 50 {
		t.Errorf("CompletionPercentage(half) = %d, want 50", got)
	}

	third := []Task{{Status: StatusCompleted}, {Status: StatusPending}, {Status: StatusPending}}
	if got := CompletionPercentage(third); got != 33 {
		t.Errorf("CompletionPercentage(third) = %d, want 33", got)
	}

	twoThirds := []Task{{Status: StatusCompleted}, {Status: StatusCompleted}, {Status: StatusPending}}
	if got := CompletionPercentage(twoThirds); got != 67 {
		t.Errorf("CompletionPercentage(twoThirds) = %d, want 67", got)
	}
}

func TestGroupByProject(t *testing.T) {
	tasks := []Task{
		{ID: "1", Project: "Apollo"},
		{ID: "2"},
		{ID: "3", Project: "Apollo"},
		{ID: "4", Project: "Zephyr"},
		{ID: "5"},
	}

	groups := GroupByProject(tasks)

	wantNames := []string{"Apollo", NoProject, "Zephyr"}
	var gotNames []string
	for _, g := range groups {
		gotNames = append(gotNames, g.Name)
	}
	if !reflect.DeepEqual(gotNames, wantNames) {
		t.Fatalf("group order = %v, want %v", gotNames, wantNames)
	}

	if len(groups[0].Tasks) != 2 || len(groups[1].Tasks) != 2 || len(groups[2].Tasks) != 1 {
		t.Errorf("group sizes wrong: %d/%d/%d", len(groups[0].Tasks), len(groups[1].Tasks), len(groups[2].Tasks))
	}
}

// Grouping a grouped-then-flattened list yields the same groups and counts.
func TestGroupByProjectIdempotent(t *testing.T) {
	tasks := []Task{
		{ID: "1", Project: "Apollo"},
		{ID: "2"},
		{ID: "3", Project: "Zephyr"},
		{ID: "4", Project: "Apollo"},
	}

	first := GroupByProject(tasks)

	var flattened []Task
	for _, g := range first {
		flattened = append(flattened, g.Tasks...)
	}

	second := GroupByProject(flattened)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("regrouping changed groups:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestProgressByProject(t *testing.T) {
	tasks := []Task{
		{Project: "Apollo", Status: StatusCompleted},
		{Project: "Apollo", Status: StatusPending},
		{Status: StatusCompleted},
	}

	got := ProgressByProject(tasks)
	want := []ProjectProgress{
		{Name: "Apollo", Total: 2, Completed: 1, Pending: 1, Progress: 50},
		{Name: NoProject, Total: 1, Completed: 1, Pending: 0, Progress: 100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProgressByProject = %+v, want %+v", got, want)
	}
}

func TestSortForDisplay(t *testing.T) {
	tasks := []Task{
		{ID: "done-late", Status: StatusCompleted, DueDate: "2024-07-01"},
		{ID: "pending-late", Status: StatusPending, DueDate: "2024-06-20"},
		{ID: "progress", Status: StatusInProgress, DueDate: "2024-06-01"},
		{ID: "pending-early", Status: StatusPending, DueDate: "2024-06-10"},
		{ID: "unknown", Status: "archived"},
	}

	sorted := SortForDisplay(tasks)

	var gotIDs []string
	for _, t := range sorted {
		gotIDs = append(gotIDs, t.ID)
	}
	wantIDs := []string{"pending-early", "pending-late", "progress", "done-late", "unknown"}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("order = %v, want %v", gotIDs, wantIDs)
	}
}

func TestSortForDisplayStableWithoutDueDate(t *testing.T) {
	tasks := []Task{
		{ID: "a", Status: StatusPending},
		{ID: "b", Status: StatusPending, DueDate: "2024-06-01"},
		{ID: "c", Status: StatusPending},
	}

	sorted := SortForDisplay(tasks)

	// a and c have no due date and must keep their relative order.
	posA, posC := -1, -1
	for i, t := range sorted {
		if t.ID == "a" {
			posA = i
		}
		if t.ID == "c" {
			posC = i
		}
	}
	if posA > posC {
		t.Errorf("relative order of tasks without due date changed: %v", sorted)
	}

	// input must not be mutated
	if tasks[0].ID != "a" || tasks[1].ID != "b" || tasks[2].ID != "c" {
		t.Error("SortForDisplay mutated its input")
	}
}

func TestFilterByAssignees(t *testing.T) {
	tasks := []Task{
		{ID: "1", AssignedTo: "alice@example.com"},
		{ID: "2", AssignedTo: "bob@example.com"},
		{ID: "3", AssignedTo: "ghost@example.com"},
	}
	engineering := map[string]bool{"alice@example.com": true, "bob@example.com": true}

	got := FilterByAssignees(tasks, engineering)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("FilterByAssignees = %+v", got)
	}
}
