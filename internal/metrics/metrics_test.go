package metrics

import (
	"testing"
	"time"

	"github.com/ptran/tracker/internal/model"
)

func due(y int, m time.Month, d int) *model.Date {
	dd := model.NewDate(y, m, d)
	return &dd
}

func TestComputeEmpty(t *testing.T) {
	m := Compute(nil, nil, nil, model.NewDate(2024, time.March, 15), Options{})

	if m.TotalProjects != 0 || m.ActiveTasks != 0 || m.CompletedTasks != 0 || m.OverdueTasks != 0 {
		t.Errorf("counts should all be zero, got %+v", m)
	}
	if m.CompletionRate != 0 || m.ProposalConversionRate != 0 {
		t.Errorf("rates on empty input = (%v, %v), want (0, 0)", m.CompletionRate, m.ProposalConversionRate)
	}
	if len(m.UpcomingDeadlines) != 0 {
		t.Errorf("upcoming on empty input = %v", m.UpcomingDeadlines)
	}

	// Buckets stay present even with no tasks.
	if len(m.TasksByPriority) != len(model.Priorities) {
		t.Fatalf("priority buckets = %d, want %d", len(m.TasksByPriority), len(model.Priorities))
	}
	for i, pc := range m.TasksByPriority {
		if pc.Priority != model.Priorities[i] || pc.Count != 0 {
			t.Errorf("priority bucket %d = %+v", i, pc)
		}
	}
	if len(m.TasksByStatus) != len(model.Statuses) {
		t.Fatalf("status buckets = %d, want %d", len(m.TasksByStatus), len(model.Statuses))
	}
	for i, sc := range m.TasksByStatus {
		if sc.Status != model.Statuses[i] || sc.Count != 0 {
			t.Errorf("status bucket %d = %+v", i, sc)
		}
	}
}

func TestComputeCounts(t *testing.T) {
	today := model.NewDate(2024, time.March, 15)

	tasks := []model.Task{
		{ID: "t1", Status: model.StatusCompleted, Priority: model.PriorityHigh},
		{ID: "t2", Status: model.StatusCompleted, Priority: model.PriorityLow},
		{ID: "t3", Status: model.StatusCompleted, Priority: model.PriorityLow},
		{ID: "t4", Status: model.StatusInProgress, Priority: model.PriorityCritical, DueDate: due(2024, time.March, 10)},
		{ID: "t5", Status: model.StatusNotStarted, Priority: model.PriorityMedium, DueDate: due(2024, time.March, 18)},
		{ID: "t6", Status: model.StatusNotStarted, Priority: model.PriorityMedium},
		{ID: "t7", Status: model.StatusReview, Priority: model.PriorityMedium},
		{ID: "t8", Status: model.StatusInProgress, Priority: model.PriorityHigh},
		{ID: "t9", Status: model.StatusInProgress, Priority: model.PriorityHigh},
		{ID: "t10", Status: model.StatusNotStarted, Priority: model.PriorityLow},
	}
	projects := []model.Project{{ID: "p1"}, {ID: "p2"}}

	m := Compute(projects, tasks, nil, today, Options{})

	if m.TotalProjects != 2 {
		t.Errorf("TotalProjects = %d, want 2", m.TotalProjects)
	}
	if m.CompletedTasks != 3 || m.ActiveTasks != 7 {
		t.Errorf("completed/active = %d/%d, want 3/7", m.CompletedTasks, m.ActiveTasks)
	}
	if m.OverdueTasks != 1 {
		t.Errorf("OverdueTasks = %d, want 1", m.OverdueTasks)
	}
	if m.CompletionRate != 30.0 {
		t.Errorf("CompletionRate = %v, want 30", m.CompletionRate)
	}
	if len(m.UpcomingDeadlines) != 1 || m.UpcomingDeadlines[0].ID != "t5" {
		t.Errorf("UpcomingDeadlines = %+v, want just t5", m.UpcomingDeadlines)
	}

	wantPriority := map[model.TaskPriority]int{
		model.PriorityLow:      3,
		model.PriorityMedium:   3,
		model.PriorityHigh:     3,
		model.PriorityCritical: 1,
	}
	for _, pc := range m.TasksByPriority {
		if pc.Count != wantPriority[pc.Priority] {
			t.Errorf("priority %s count = %d, want %d", pc.Priority, pc.Count, wantPriority[pc.Priority])
		}
	}

	wantStatus := map[model.TaskStatus]int{
		model.StatusNotStarted: 3,
		model.StatusInProgress: 3,
		model.StatusReview:     1,
		model.StatusCompleted:  3,
	}
	for _, sc := range m.TasksByStatus {
		if sc.Count != wantStatus[sc.Status] {
			t.Errorf("status %s count = %d, want %d", sc.Status, sc.Count, wantStatus[sc.Status])
		}
	}
}

func TestComputeProposalConversion(t *testing.T) {
	proposals := []model.Proposal{
		{Stage: model.StageDraft},
		{Stage: model.StageSentToClient},
		{Stage: model.StageNegotiation},
		{Stage: model.StageApproved},
		{Stage: model.StageContractSigned},
	}

	m := Compute(nil, nil, proposals, model.Today(), Options{})
	if m.ProposalConversionRate != 20.0 {
		t.Errorf("ProposalConversionRate = %v, want 20", m.ProposalConversionRate)
	}
}

func TestComputeUpcomingSortedAndCapped(t *testing.T) {
	today := model.NewDate(2024, time.March, 15)

	// Seven tasks in the window, deliberately out of due order.
	var tasks []model.Task
	for _, d := range []int{21, 16, 19, 17, 20, 18, 16} {
		tasks = append(tasks, model.Task{
			ID:      "due-" + string(rune('a'+len(tasks))),
			Status:  model.StatusInProgress,
			DueDate: due(2024, time.March, d),
		})
	}

	m := Compute(nil, tasks, nil, today, Options{})

	if len(m.UpcomingDeadlines) != 5 {
		t.Fatalf("upcoming length = %d, want 5", len(m.UpcomingDeadlines))
	}
	for i := 1; i < len(m.UpcomingDeadlines); i++ {
		prev, cur := m.UpcomingDeadlines[i-1].DueDate, m.UpcomingDeadlines[i].DueDate
		if cur.Before(*prev) {
			t.Errorf("upcoming not sorted: %v before %v at index %d", cur, prev, i)
		}
	}
	if last := m.UpcomingDeadlines[4].DueDate; last.Day > 19 {
		t.Errorf("cap kept a later deadline (%v) over a sooner one", last)
	}
}

func TestComputeHorizonOption(t *testing.T) {
	today := model.NewDate(2024, time.March, 15)
	tasks := []model.Task{
		{ID: "near", Status: model.StatusInProgress, DueDate: due(2024, time.March, 18)},
		{ID: "far", Status: model.StatusInProgress, DueDate: due(2024, time.March, 28)},
	}

	m := Compute(nil, tasks, nil, today, Options{HorizonDays: 14})
	if len(m.UpcomingDeadlines) != 2 {
		t.Errorf("with 14-day horizon, upcoming = %d, want 2", len(m.UpcomingDeadlines))
	}

	m = Compute(nil, tasks, nil, today, Options{HorizonDays: 7})
	if len(m.UpcomingDeadlines) != 1 || m.UpcomingDeadlines[0].ID != "near" {
		t.Errorf("with 7-day horizon, upcoming = %+v, want just near", m.UpcomingDeadlines)
	}
}
