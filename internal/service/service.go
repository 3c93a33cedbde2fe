// Package service is the core orchestration layer: it validates
// lifecycle transitions, routes mutations through the persistence
// collaborator, and keeps the dashboard snapshot fresh by reacting to
// change-notification signals.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/ptran/tracker/internal/metrics"
	"github.com/ptran/tracker/internal/model"
	"github.com/ptran/tracker/internal/notify"
	"github.com/ptran/tracker/internal/schedule"
	"github.com/ptran/tracker/internal/stage"
	"github.com/ptran/tracker/internal/store"
)

// metricSources are the collections whose changes stale the dashboard.
var metricSources = []model.EntityType{
	model.EntityProjects,
	model.EntityTasks,
	model.EntityProposals,
}

// Tracker coordinates the stage machine, temporal model, and metrics
// over a Store. It is safe for concurrent use.
type Tracker struct {
	store store.Store
	now   func() time.Time

	horizonDays   int
	upcomingLimit int

	mu    sync.Mutex
	last  *model.DashboardMetrics
	stale bool
	gen   uint64

	unsubscribe func()
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock injects the time source, enabling deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithUpcomingHorizon sets the upcoming-deadline window in days.
func WithUpcomingHorizon(days int) Option {
	return func(t *Tracker) { t.horizonDays = days }
}

// WithUpcomingLimit caps the surfaced upcoming deadlines.
func WithUpcomingLimit(n int) Option {
	return func(t *Tracker) { t.upcomingLimit = n }
}

// New creates a Tracker over st. When hub is non-nil the tracker
// subscribes to change signals for projects, tasks, and proposals and
// treats the computed dashboard as stale whenever one arrives — even
// for its own writes, where a redundant signal right after the local
// mutation is expected and harmless.
func New(st store.Store, hub *notify.Hub, opts ...Option) *Tracker {
	t := &Tracker{
		store:         st,
		now:           time.Now,
		horizonDays:   schedule.DefaultHorizonDays,
		upcomingLimit: 5,
	}
	for _, opt := range opts {
		opt(t)
	}

	if hub != nil {
		t.unsubscribe = hub.Subscribe(metricSources, func(model.EntityType) {
			t.Invalidate()
		})
	}

	return t
}

// Close detaches the tracker from the notification hub.
func (t *Tracker) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
	}
}

// today returns the current calendar date from the injected clock.
func (t *Tracker) today() model.Date {
	return model.DateOf(t.now())
}

// Invalidate marks all derived state stale. The next Dashboard call
// recomputes from a fresh read.
func (t *Tracker) Invalidate() {
	t.mu.Lock()
	t.stale = true
	t.gen++
	t.mu.Unlock()
}

// Dashboard returns the current dashboard figures. The last
// successfully computed snapshot is served until a change signal (or
// Invalidate) marks it stale; a failed recompute leaves the previous
// snapshot in place and surfaces the error.
func (t *Tracker) Dashboard(ctx context.Context) (model.DashboardMetrics, error) {
	t.mu.Lock()
	if t.last != nil && !t.stale {
		m := *t.last
		t.mu.Unlock()
		return m, nil
	}
	gen := t.gen
	t.mu.Unlock()

	m, err := metrics.Load(ctx, t.store, t.today(), metrics.Options{
		HorizonDays:   t.horizonDays,
		UpcomingLimit: t.upcomingLimit,
	})
	if err != nil {
		return model.DashboardMetrics{}, err
	}

	t.mu.Lock()
	t.last = &m
	// An invalidation that arrived while the recompute was in flight
	// may not be reflected in this snapshot; keep it stale so the next
	// call recomputes.
	t.stale = t.gen != gen
	t.mu.Unlock()
	return m, nil
}

// LastKnown returns the last successfully computed dashboard snapshot,
// if any, without touching the store.
func (t *Tracker) LastKnown() (model.DashboardMetrics, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last == nil {
		return model.DashboardMetrics{}, false
	}
	return *t.last, true
}

// AdvanceProposal moves a proposal to the next lifecycle stage,
// stamping that stage's date with today. Advancing past the terminal
// stage fails with an invalid-transition error.
func (t *Tracker) AdvanceProposal(ctx context.Context, id string) (*model.Proposal, error) {
	p, err := t.store.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	entered, err := stage.Advance(p, t.today())
	if err != nil {
		return nil, err
	}

	patch := store.ProposalPatch{Stage: &p.Stage}
	if d := stage.DateEntered(p, entered); d != nil {
		patch.SetStageDate(entered, *d)
	}
	return t.store.UpdateProposal(ctx, id, patch)
}

// SetProposalStage assigns an arbitrary stage, forward or backward,
// without stamping dates. This is the deliberate correction escape
// hatch alongside AdvanceProposal.
func (t *Tracker) SetProposalStage(ctx context.Context, id string, s model.Stage) (*model.Proposal, error) {
	return t.store.UpdateProposal(ctx, id, store.ProposalPatch{Stage: &s})
}

// SetTaskStatus moves a task to the given status. The store stamps
// completed_at on the move into completed and clears it on any move
// away.
func (t *Tracker) SetTaskStatus(ctx context.Context, id string, s model.TaskStatus) (*model.Task, error) {
	return t.store.UpdateTask(ctx, id, store.TaskPatch{Status: &s})
}

// OverdueTasks returns the open tasks whose due date has passed.
func (t *Tracker) OverdueTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := t.store.ListTasks(ctx, store.TaskFilter{})
	if err != nil {
		return nil, err
	}
	today := t.today()

	var overdue []model.Task
	for _, task := range tasks {
		if schedule.IsOverdue(task, today) {
			overdue = append(overdue, task)
		}
	}
	return overdue, nil
}

// GanttRows returns the timeline bars for all dated tasks within the
// display window, clipped to it.
func (t *Tracker) GanttRows(ctx context.Context, window schedule.Interval) ([]schedule.Bar, error) {
	tasks, err := t.store.ListTasks(ctx, store.TaskFilter{})
	if err != nil {
		return nil, err
	}
	return schedule.GanttRows(tasks, window), nil
}

// StageProgress returns the progress read model for a proposal.
func (t *Tracker) StageProgress(ctx context.Context, id string) ([]stage.Step, error) {
	p, err := t.store.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}
	return stage.Progress(p.Stage), nil
}
