package model

import "time"

// TaskPriority is the urgency bucket of a task.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

// Priorities lists all priorities in fixed enumeration order.
var Priorities = []TaskPriority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityCritical,
}

// PriorityLabels maps each priority to its display label.
var PriorityLabels = map[TaskPriority]string{
	PriorityLow:      "Low",
	PriorityMedium:   "Medium",
	PriorityHigh:     "High",
	PriorityCritical: "Critical",
}

// IsValid reports whether p is one of the four known priorities.
func (p TaskPriority) IsValid() bool {
	_, ok := PriorityLabels[p]
	return ok
}

// TaskStatus is the workflow bucket of a task. Statuses carry no
// transition ordering; a task may move between any two of them.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusOnHold     TaskStatus = "on_hold"
	StatusReview     TaskStatus = "review"
	StatusCompleted  TaskStatus = "completed"
)

// Statuses lists all statuses in fixed enumeration order.
var Statuses = []TaskStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusOnHold,
	StatusReview,
	StatusCompleted,
}

// StatusLabels maps each status to its display label.
var StatusLabels = map[TaskStatus]string{
	StatusNotStarted: "Not Started",
	StatusInProgress: "In Progress",
	StatusOnHold:     "On Hold",
	StatusReview:     "Review",
	StatusCompleted:  "Completed",
}

// IsValid reports whether s is one of the five known statuses.
func (s TaskStatus) IsValid() bool {
	_, ok := StatusLabels[s]
	return ok
}

// KanbanColumn pairs a status with the board column title it renders as.
type KanbanColumn struct {
	Status TaskStatus `json:"id"`
	Title  string     `json:"title"`
}

// KanbanColumns is the fixed board layout. on_hold tasks are reachable
// from filters but have no dedicated column.
var KanbanColumns = []KanbanColumn{
	{Status: StatusNotStarted, Title: "Backlog"},
	{Status: StatusInProgress, Title: "In Progress"},
	{Status: StatusReview, Title: "Review"},
	{Status: StatusCompleted, Title: "Completed"},
}

// Task is a unit of work, optionally affiliated with a project.
type Task struct {
	ID          string       `json:"id" db:"id"`
	ProjectID   *string      `json:"project_id,omitempty" db:"project_id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Priority    TaskPriority `json:"priority" db:"priority"`
	Status      TaskStatus   `json:"status" db:"status"`
	StartDate   *Date        `json:"start_date,omitempty" db:"start_date"`
	DueDate     *Date        `json:"due_date,omitempty" db:"due_date"`
	CompletedAt *time.Time   `json:"completed_at,omitempty" db:"completed_at"`
	AssignedTo  string       `json:"assigned_to,omitempty" db:"assigned_to"`

	// DependsOn is a weak reference to another task. It is metadata
	// only: nothing traverses it and it does not gate status changes.
	DependsOn *string `json:"depends_on,omitempty" db:"depends_on"`

	EstimatedHours *float64  `json:"estimated_hours,omitempty" db:"estimated_hours"`
	ActualHours    *float64  `json:"actual_hours,omitempty" db:"actual_hours"`
	Position       int       `json:"position" db:"position"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// Project is populated by list queries that join projects.
	Project *Project `json:"project,omitempty" db:"-"`

	// Tags is populated by queries that join with task_tags.
	Tags []Tag `json:"tags,omitempty" db:"-"`
}
