package schedule

import (
	"testing"
	"time"

	"github.com/ptran/tracker/internal/model"
)

func date(y int, m time.Month, d int) *model.Date {
	dd := model.NewDate(y, m, d)
	return &dd
}

func TestIsOverdue(t *testing.T) {
	today := model.NewDate(2024, time.March, 15)

	tests := []struct {
		name string
		task model.Task
		want bool
	}{
		{"due yesterday", model.Task{DueDate: date(2024, time.March, 14)}, true},
		{"due today", model.Task{DueDate: date(2024, time.March, 15)}, false},
		{"due tomorrow", model.Task{DueDate: date(2024, time.March, 16)}, false},
		{"no due date", model.Task{}, false},
		{"completed and past due", model.Task{DueDate: date(2024, time.March, 1), Status: model.StatusCompleted}, false},
		{"long past due", model.Task{DueDate: date(2023, time.December, 31), Status: model.StatusInProgress}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.task, today); got != tt.want {
				t.Errorf("IsOverdue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUpcoming(t *testing.T) {
	today := model.NewDate(2024, time.March, 15)

	tests := []struct {
		name string
		task model.Task
		want bool
	}{
		{"due today excluded", model.Task{DueDate: date(2024, time.March, 15)}, false},
		{"due tomorrow", model.Task{DueDate: date(2024, time.March, 16)}, true},
		{"due in six days", model.Task{DueDate: date(2024, time.March, 21)}, true},
		{"due exactly at horizon excluded", model.Task{DueDate: date(2024, time.March, 22)}, false},
		{"due past horizon", model.Task{DueDate: date(2024, time.March, 23)}, false},
		{"overdue not upcoming", model.Task{DueDate: date(2024, time.March, 10)}, false},
		{"no due date", model.Task{}, false},
		{"completed in window", model.Task{DueDate: date(2024, time.March, 18), Status: model.StatusCompleted}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUpcoming(tt.task, today, DefaultHorizonDays); got != tt.want {
				t.Errorf("IsUpcoming = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskInterval(t *testing.T) {
	tests := []struct {
		name   string
		task   model.Task
		want   Interval
		wantOK bool
	}{
		{
			"both dates",
			model.Task{StartDate: date(2024, time.March, 1), DueDate: date(2024, time.March, 10)},
			Interval{Start: model.NewDate(2024, time.March, 1), End: model.NewDate(2024, time.March, 10)},
			true,
		},
		{
			"start only collapses to one day",
			model.Task{StartDate: date(2024, time.March, 1)},
			Interval{Start: model.NewDate(2024, time.March, 1), End: model.NewDate(2024, time.March, 1)},
			true,
		},
		{
			"due only collapses to one day",
			model.Task{DueDate: date(2024, time.March, 10)},
			Interval{Start: model.NewDate(2024, time.March, 10), End: model.NewDate(2024, time.March, 10)},
			true,
		},
		{"no dates excluded", model.Task{}, Interval{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TaskInterval(tt.task)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("TaskInterval = (%+v, %v), want (%+v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Start: model.NewDate(2024, time.March, 1), End: model.NewDate(2024, time.March, 31)}

	if !iv.Contains(model.NewDate(2024, time.March, 1)) || !iv.Contains(model.NewDate(2024, time.March, 31)) {
		t.Error("interval bounds should be inclusive")
	}
	if iv.Contains(model.NewDate(2024, time.February, 29)) || iv.Contains(model.NewDate(2024, time.April, 1)) {
		t.Error("dates outside interval reported as contained")
	}
}

func TestGanttRows(t *testing.T) {
	window := MonthWindow(model.NewDate(2024, time.March, 15))

	inside := model.Task{ID: "inside", StartDate: date(2024, time.March, 5), DueDate: date(2024, time.March, 10)}
	spansStart := model.Task{ID: "spans-start", StartDate: date(2024, time.February, 20), DueDate: date(2024, time.March, 3)}
	spansEnd := model.Task{ID: "spans-end", StartDate: date(2024, time.March, 25), DueDate: date(2024, time.April, 5)}
	before := model.Task{ID: "before", StartDate: date(2024, time.January, 1), DueDate: date(2024, time.January, 31)}
	undated := model.Task{ID: "undated"}

	bars := GanttRows([]model.Task{inside, spansEnd, spansStart, before, undated}, window)

	if len(bars) != 3 {
		t.Fatalf("got %d bars, want 3", len(bars))
	}

	// Sorted by true start: spans-start (Feb 20), inside (Mar 5), spans-end (Mar 25).
	if bars[0].Task.ID != "spans-start" || bars[1].Task.ID != "inside" || bars[2].Task.ID != "spans-end" {
		t.Fatalf("bar order = %s, %s, %s", bars[0].Task.ID, bars[1].Task.ID, bars[2].Task.ID)
	}

	if !bars[0].ClampedStart || bars[0].ClampedEnd {
		t.Errorf("spans-start clamping = (%v, %v), want (true, false)", bars[0].ClampedStart, bars[0].ClampedEnd)
	}
	if !bars[0].Interval.Start.Equal(window.Start) {
		t.Errorf("spans-start clipped start = %v, want %v", bars[0].Interval.Start, window.Start)
	}

	if bars[1].ClampedStart || bars[1].ClampedEnd {
		t.Errorf("inside should not be clamped")
	}

	if bars[2].ClampedStart || !bars[2].ClampedEnd {
		t.Errorf("spans-end clamping = (%v, %v), want (false, true)", bars[2].ClampedStart, bars[2].ClampedEnd)
	}
	if !bars[2].Interval.End.Equal(window.End) {
		t.Errorf("spans-end clipped end = %v, want %v", bars[2].Interval.End, window.End)
	}
}

func TestGanttRowsStableTies(t *testing.T) {
	window := Interval{Start: model.NewDate(2024, time.March, 1), End: model.NewDate(2024, time.March, 31)}
	a := model.Task{ID: "a", StartDate: date(2024, time.March, 5), DueDate: date(2024, time.March, 8)}
	b := model.Task{ID: "b", StartDate: date(2024, time.March, 5), DueDate: date(2024, time.March, 20)}

	bars := GanttRows([]model.Task{a, b}, window)
	if len(bars) != 2 || bars[0].Task.ID != "a" || bars[1].Task.ID != "b" {
		t.Errorf("ties must keep input order, got %+v", bars)
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		in    model.Date
		first model.Date
		last  model.Date
	}{
		{model.NewDate(2024, time.March, 15), model.NewDate(2024, time.March, 1), model.NewDate(2024, time.March, 31)},
		{model.NewDate(2024, time.February, 1), model.NewDate(2024, time.February, 1), model.NewDate(2024, time.February, 29)},
		{model.NewDate(2023, time.February, 28), model.NewDate(2023, time.February, 1), model.NewDate(2023, time.February, 28)},
		{model.NewDate(2024, time.December, 31), model.NewDate(2024, time.December, 1), model.NewDate(2024, time.December, 31)},
	}

	for _, tt := range tests {
		got := MonthWindow(tt.in)
		if !got.Start.Equal(tt.first) || !got.End.Equal(tt.last) {
			t.Errorf("MonthWindow(%v) = [%v, %v], want [%v, %v]", tt.in, got.Start, got.End, tt.first, tt.last)
		}
	}
}
