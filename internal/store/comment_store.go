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

// ListComments retrieves all comments for a task, oldest first.
func (s *SQLiteStore) ListComments(ctx context.Context, taskID string) ([]model.Comment, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM comments WHERE task_id = ? ORDER BY created_at", taskID)
	if err != nil {
		return nil, apperr.NewCollaborator("querying comments", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewCollaborator("reading comment rows", err)
	}
	return comments, nil
}

// GetComment retrieves a single comment by ID.
func (s *SQLiteStore) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM comments WHERE id = ?", id)
	if err != nil {
		return nil, apperr.NewCollaborator("querying comment", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperr.NewCollaborator("querying comment", err)
		}
		return nil, apperr.NewNotFound("comment", id)
	}
	c, err := scanComment(rows)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateComment inserts a new comment on a task. A missing task
// surfaces as a not-found error.
func (s *SQLiteStore) CreateComment(ctx context.Context, c model.Comment) (*model.Comment, error) {
	if strings.TrimSpace(c.Content) == "" {
		return nil, apperr.NewValidation("content", "must not be empty")
	}
	if c.TaskID == "" {
		return nil, apperr.NewValidation("task_id", "must not be empty")
	}

	var taskCount int
	if err := s.db.GetContext(ctx, &taskCount,
		"SELECT COUNT(*) FROM tasks WHERE id = ?", c.TaskID); err != nil {
		return nil, apperr.NewCollaborator("checking comment task", err)
	}
	if taskCount == 0 {
		return nil, apperr.NewNotFound("task", c.TaskID)
	}

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (id, task_id, content, author, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.TaskID, c.Content, c.Author, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.NewCollaborator("creating comment", err)
	}

	s.publish(model.EntityComments)
	return &c, nil
}

// UpdateComment applies a partial update to a comment and returns the
// updated row.
func (s *SQLiteStore) UpdateComment(ctx context.Context, id string, patch CommentPatch) (*model.Comment, error) {
	var set setClause
	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return nil, apperr.NewValidation("content", "must not be empty")
		}
		set.add("content", *patch.Content)
	}
	if patch.Author != nil {
		set.add("author", *patch.Author)
	}
	if set.empty() {
		return s.GetComment(ctx, id)
	}
	set.add("updated_at", time.Now().UTC())

	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE comments SET %s WHERE id = ?", set.sql()),
		append(set.args, id)...,
	)
	if err != nil {
		return nil, apperr.NewCollaborator("updating comment", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, apperr.NewNotFound("comment", id)
	}

	s.publish(model.EntityComments)
	return s.GetComment(ctx, id)
}

// DeleteComment removes a comment by ID.
func (s *SQLiteStore) DeleteComment(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return apperr.NewCollaborator("deleting comment", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperr.NewNotFound("comment", id)
	}

	s.publish(model.EntityComments)
	return nil
}

// scanComment scans a comment row from a sqlx.Rows result set.
func scanComment(rows *sqlx.Rows) (model.Comment, error) {
	var c model.Comment
	err := rows.Scan(
		&c.ID, &c.TaskID, &c.Content, &c.Author, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return model.Comment{}, apperr.NewCollaborator("scanning comment row", err)
	}
	return c, nil
}
