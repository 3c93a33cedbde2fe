// Package metrics derives the dashboard and analytics figures from a
// snapshot of the current projects, tasks, and proposals. There is no
// incremental update model: every call recomputes from scratch.
package metrics

import (
	"sort"

	"github.com/ptran/tracker/internal/model"
	"github.com/ptran/tracker/internal/schedule"
)

// Options tunes the upcoming-deadlines figure.
type Options struct {
	// HorizonDays is the upcoming window; defaults to
	// schedule.DefaultHorizonDays when zero.
	HorizonDays int

	// UpcomingLimit caps the surfaced upcoming tasks; defaults to 5
	// when zero.
	UpcomingLimit int
}

func (o Options) withDefaults() Options {
	if o.HorizonDays <= 0 {
		o.HorizonDays = schedule.DefaultHorizonDays
	}
	if o.UpcomingLimit <= 0 {
		o.UpcomingLimit = 5
	}
	return o
}

// Compute derives all dashboard figures from the given snapshot as of
// today. It is a pure function: the caller supplies the clock.
func Compute(
	projects []model.Project,
	tasks []model.Task,
	proposals []model.Proposal,
	today model.Date,
	opts Options,
) model.DashboardMetrics {
	opts = opts.withDefaults()

	m := model.DashboardMetrics{
		TotalProjects: len(projects),
	}

	priorityCounts := make(map[model.TaskPriority]int, len(model.Priorities))
	statusCounts := make(map[model.TaskStatus]int, len(model.Statuses))

	var upcoming []model.Task
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			m.CompletedTasks++
		} else {
			m.ActiveTasks++
		}
		if schedule.IsOverdue(t, today) {
			m.OverdueTasks++
		}
		if schedule.IsUpcoming(t, today, opts.HorizonDays) {
			upcoming = append(upcoming, t)
		}
		priorityCounts[t.Priority]++
		statusCounts[t.Status]++
	}

	// Soonest due first; the cap keeps the figure glanceable.
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(*upcoming[j].DueDate)
	})
	if len(upcoming) > opts.UpcomingLimit {
		upcoming = upcoming[:opts.UpcomingLimit]
	}
	m.UpcomingDeadlines = upcoming

	// Every bucket is always present, zero counts included, so chart
	// axes stay stable across snapshots.
	m.TasksByPriority = make([]model.PriorityCount, 0, len(model.Priorities))
	for _, p := range model.Priorities {
		m.TasksByPriority = append(m.TasksByPriority, model.PriorityCount{
			Priority: p,
			Count:    priorityCounts[p],
		})
	}
	m.TasksByStatus = make([]model.StatusCount, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		m.TasksByStatus = append(m.TasksByStatus, model.StatusCount{
			Status: s,
			Count:  statusCounts[s],
		})
	}

	if len(tasks) > 0 {
		m.CompletionRate = float64(m.CompletedTasks) / float64(len(tasks)) * 100
	}

	signed := 0
	for _, p := range proposals {
		if p.Stage == model.StageContractSigned {
			signed++
		}
	}
	if len(proposals) > 0 {
		m.ProposalConversionRate = float64(signed) / float64(len(proposals)) * 100
	}

	return m
}
