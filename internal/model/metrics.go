package model

// PriorityCount is a priority bucket with its task count.
type PriorityCount struct {
	Priority TaskPriority `json:"priority"`
	Count    int          `json:"count"`
}

// StatusCount is a status bucket with its task count.
type StatusCount struct {
	Status TaskStatus `json:"status"`
	Count  int        `json:"count"`
}

// DashboardMetrics is the rollup rendered on the dashboard and
// analytics views. All figures are derived wholesale from a snapshot
// of the current projects, tasks, and proposals.
type DashboardMetrics struct {
	TotalProjects  int `json:"total_projects"`
	ActiveTasks    int `json:"active_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`

	// UpcomingDeadlines holds the soonest-due open tasks inside the
	// upcoming window, capped by configuration.
	UpcomingDeadlines []Task `json:"upcoming_deadlines"`

	// TasksByPriority always has one entry per priority, zero counts
	// included, in fixed low-to-critical order.
	TasksByPriority []PriorityCount `json:"tasks_by_priority"`

	// TasksByStatus always has one entry per status, zero counts
	// included, in fixed not_started-to-completed order.
	TasksByStatus []StatusCount `json:"tasks_by_status"`

	// CompletionRate and ProposalConversionRate are percentages in
	// [0, 100], zero when the corresponding collection is empty.
	CompletionRate         float64 `json:"completion_rate"`
	ProposalConversionRate float64 `json:"proposal_conversion_rate"`
}
