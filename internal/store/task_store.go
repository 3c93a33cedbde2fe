package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ptran/tracker/internal/apperr"
	"github.com/ptran/tracker/internal/model"
)

// ListTasks retrieves tasks matching the filter, ordered by position
// ascending. Each task carries its joined project and tags.
func (s *SQLiteStore) ListTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	var conditions []string
	var args []interface{}

	if filter.ProjectID != nil {
		conditions = append(conditions, "project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(*filter.Priority))
	}

	query := "SELECT * FROM tasks"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY position"

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.NewCollaborator("querying tasks", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewCollaborator("reading task rows", err)
	}

	if err := s.attachProjects(ctx, tasks); err != nil {
		return nil, err
	}
	for i := range tasks {
		tags, err := s.TagsForTask(ctx, tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Tags = tags
	}

	return tasks, nil
}

// GetTask retrieves a single task by ID, including its tags.
func (s *SQLiteStore) GetTask(ctx context.Context, id string) (*model.Task, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM tasks WHERE id = ?", id)
	if err != nil {
		return nil, apperr.NewCollaborator("querying task", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperr.NewCollaborator("querying task", err)
		}
		return nil, apperr.NewNotFound("task", id)
	}
	t, err := scanTask(rows)
	if err != nil {
		return nil, err
	}

	tags, err := s.TagsForTask(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Tags = tags

	return &t, nil
}

// CreateTask inserts a new task. Generates a UUID if ID is empty,
// defaults priority/status, and assigns the next position.
func (s *SQLiteStore) CreateTask(ctx context.Context, t model.Task) (*model.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return nil, apperr.NewValidation("title", "must not be empty")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if !t.Priority.IsValid() {
		return nil, apperr.NewValidation("priority", fmt.Sprintf("unknown priority %q", t.Priority))
	}
	if t.Status == "" {
		t.Status = model.StatusNotStarted
	}
	if !t.Status.IsValid() {
		return nil, apperr.NewValidation("status", fmt.Sprintf("unknown status %q", t.Status))
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == model.StatusCompleted && t.CompletedAt == nil {
		t.CompletedAt = &now
	}

	// Default position to max+1 within the status column.
	if t.Position == 0 {
		var maxPos int
		err := s.db.GetContext(ctx, &maxPos,
			"SELECT COALESCE(MAX(position), 0) FROM tasks WHERE status = ?",
			string(t.Status))
		if err != nil {
			return nil, apperr.NewCollaborator("getting max position", err)
		}
		t.Position = maxPos + 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (
			id, project_id, title, description, priority, status,
			start_date, due_date, completed_at, assigned_to, depends_on,
			estimated_hours, actual_hours, position, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ProjectID, t.Title, t.Description, string(t.Priority), string(t.Status),
		t.StartDate, t.DueDate, t.CompletedAt, t.AssignedTo, t.DependsOn,
		t.EstimatedHours, t.ActualHours, t.Position, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.NewCollaborator("creating task", err)
	}

	s.publish(model.EntityTasks)
	return &t, nil
}

// UpdateTask applies a partial update to a task and returns the
// updated row. completed_at is managed here: stamped on the first move
// into completed, cleared on any move away.
func (s *SQLiteStore) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*model.Task, error) {
	var set setClause
	if patch.ProjectID != nil {
		set.add("project_id", *patch.ProjectID)
	}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, apperr.NewValidation("title", "must not be empty")
		}
		set.add("title", *patch.Title)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.Priority != nil {
		if !patch.Priority.IsValid() {
			return nil, apperr.NewValidation("priority", fmt.Sprintf("unknown priority %q", *patch.Priority))
		}
		set.add("priority", string(*patch.Priority))
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return nil, apperr.NewValidation("status", fmt.Sprintf("unknown status %q", *patch.Status))
		}
		set.add("status", string(*patch.Status))
		if *patch.Status == model.StatusCompleted {
			set.addExpr("completed_at = COALESCE(completed_at, ?)", time.Now().UTC())
		} else {
			set.addExpr("completed_at = NULL")
		}
	}
	if patch.StartDate != nil {
		set.add("start_date", patch.StartDate)
	}
	if patch.DueDate != nil {
		set.add("due_date", patch.DueDate)
	}
	if patch.AssignedTo != nil {
		set.add("assigned_to", *patch.AssignedTo)
	}
	if patch.DependsOn != nil {
		set.add("depends_on", *patch.DependsOn)
	}
	if patch.EstimatedHours != nil {
		set.add("estimated_hours", *patch.EstimatedHours)
	}
	if patch.ActualHours != nil {
		set.add("actual_hours", *patch.ActualHours)
	}
	if patch.Position != nil {
		set.add("position", *patch.Position)
	}
	if set.empty() {
		return s.GetTask(ctx, id)
	}
	set.add("updated_at", time.Now().UTC())

	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", set.sql()),
		append(set.args, id)...,
	)
	if err != nil {
		return nil, apperr.NewCollaborator("updating task", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, apperr.NewNotFound("task", id)
	}

	s.publish(model.EntityTasks)
	return s.GetTask(ctx, id)
}

// DeleteTask removes a task. Cascades to comments and task_tags.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return apperr.NewCollaborator("deleting task", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperr.NewNotFound("task", id)
	}

	s.publish(model.EntityTasks)
	return nil
}

// SetTaskTags replaces all tag associations for a task.
func (s *SQLiteStore) SetTaskTags(ctx context.Context, taskID string, tagIDs []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.NewCollaborator("beginning transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM task_tags WHERE task_id = ?", taskID); err != nil {
		return apperr.NewCollaborator("clearing task tags", err)
	}

	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?)",
			taskID, tagID); err != nil {
			return apperr.NewCollaborator("setting task tag", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperr.NewCollaborator("committing task tags", err)
	}

	s.publish(model.EntityTasks)
	return nil
}

// TagsForTask retrieves all tags associated with a task.
func (s *SQLiteStore) TagsForTask(ctx context.Context, taskID string) ([]model.Tag, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT t.* FROM tags t
		INNER JOIN task_tags tt ON t.id = tt.tag_id
		WHERE tt.task_id = ?
		ORDER BY t.name`, taskID)
	if err != nil {
		return nil, apperr.NewCollaborator("querying tags for task", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, apperr.NewCollaborator("scanning tag row", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewCollaborator("reading tag rows", err)
	}
	return tags, nil
}

// attachProjects populates the joined Project on tasks that have one.
func (s *SQLiteStore) attachProjects(ctx context.Context, tasks []model.Task) error {
	needs := false
	for _, t := range tasks {
		if t.ProjectID != nil {
			needs = true
			break
		}
	}
	if !needs {
		return nil
	}

	projects, err := s.ListProjects(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]model.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	for i := range tasks {
		if tasks[i].ProjectID == nil {
			continue
		}
		if p, ok := byID[*tasks[i].ProjectID]; ok {
			proj := p
			tasks[i].Project = &proj
		}
	}
	return nil
}

// scanTask scans a task row from a sqlx.Rows result set.
func scanTask(rows *sqlx.Rows) (model.Task, error) {
	var (
		t        model.Task
		priority string
		status   string
	)

	err := rows.Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &priority, &status,
		&t.StartDate, &t.DueDate, &t.CompletedAt, &t.AssignedTo, &t.DependsOn,
		&t.EstimatedHours, &t.ActualHours, &t.Position, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, apperr.NewCollaborator("scanning task row", err)
	}

	t.Priority = model.TaskPriority(priority)
	t.Status = model.TaskStatus(status)
	return t, nil
}
