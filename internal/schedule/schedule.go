// Package schedule implements the task temporal model: overdue and
// upcoming-deadline predicates and the effective intervals that place
// tasks on calendar and timeline views.
package schedule

import (
	"sort"
	"time"

	"github.com/ptran/tracker/internal/model"
)

// DefaultHorizonDays is the default upcoming-deadline window.
const DefaultHorizonDays = 7

// IsOverdue reports whether the task's due date has passed as of
// today. Comparison is strict: a task due today is not overdue.
// Completed tasks are never overdue, regardless of due date.
func IsOverdue(t model.Task, today model.Date) bool {
	if t.DueDate == nil || t.Status == model.StatusCompleted {
		return false
	}
	return t.DueDate.Before(today)
}

// IsUpcoming reports whether the task is due within the next
// horizonDays days as of today. Both bounds are exclusive: a task due
// today or due exactly horizonDays out is not upcoming. Completed
// tasks never qualify.
func IsUpcoming(t model.Task, today model.Date, horizonDays int) bool {
	if t.DueDate == nil || t.Status == model.StatusCompleted {
		return false
	}
	limit := today.AddDays(horizonDays)
	return t.DueDate.After(today) && t.DueDate.Before(limit)
}

// Interval is an inclusive calendar-date span.
type Interval struct {
	Start model.Date `json:"start"`
	End   model.Date `json:"end"`
}

// Contains reports whether d falls inside the interval.
func (iv Interval) Contains(d model.Date) bool {
	return !d.Before(iv.Start) && !d.After(iv.End)
}

// TaskInterval returns the effective interval for a task. A task with
// both dates spans [start, due]; a task with exactly one date is a
// zero-length, one-day bar on that date. ok is false when the task has
// neither date set, which excludes it from timeline views.
func TaskInterval(t model.Task) (iv Interval, ok bool) {
	switch {
	case t.StartDate != nil && t.DueDate != nil:
		return Interval{Start: *t.StartDate, End: *t.DueDate}, true
	case t.StartDate != nil:
		return Interval{Start: *t.StartDate, End: *t.StartDate}, true
	case t.DueDate != nil:
		return Interval{Start: *t.DueDate, End: *t.DueDate}, true
	default:
		return Interval{}, false
	}
}

// Bar is a task positioned within a display window. ClampedStart and
// ClampedEnd report that the true interval extends beyond the window
// edge, so the presentation can draw continuation affordances.
type Bar struct {
	Task         model.Task `json:"task"`
	Interval     Interval   `json:"interval"`
	ClampedStart bool       `json:"clamped_start"`
	ClampedEnd   bool       `json:"clamped_end"`
}

// GanttRows computes the visible bars for a display window. Tasks
// without dates are excluded; bars entirely outside the window are
// excluded; the rest are clipped to the window. Rows are ordered by
// effective start ascending, ties keeping input order.
func GanttRows(tasks []model.Task, window Interval) []Bar {
	var bars []Bar
	for _, t := range tasks {
		iv, ok := TaskInterval(t)
		if !ok {
			continue
		}
		if iv.End.Before(window.Start) || iv.Start.After(window.End) {
			continue
		}
		bar := Bar{Task: t, Interval: iv}
		if iv.Start.Before(window.Start) {
			bar.Interval.Start = window.Start
			bar.ClampedStart = true
		}
		if iv.End.After(window.End) {
			bar.Interval.End = window.End
			bar.ClampedEnd = true
		}
		bars = append(bars, bar)
	}

	sort.SliceStable(bars, func(i, j int) bool {
		si, _ := TaskInterval(bars[i].Task)
		sj, _ := TaskInterval(bars[j].Task)
		return si.Start.Before(sj.Start)
	})

	return bars
}

// MonthWindow returns the interval covering the calendar month that
// contains d.
func MonthWindow(d model.Date) Interval {
	first := model.NewDate(d.Year, d.Month, 1)
	last := model.DateOf(time.Date(d.Year, d.Month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1))
	return Interval{Start: first, End: last}
}
