package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ptran/tracker/internal/apperr"
	"github.com/ptran/tracker/internal/model"
)

// ListTags retrieves all tags ordered by name.
func (s *SQLiteStore) ListTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM tags ORDER BY name")
	if err != nil {
		return nil, apperr.NewCollaborator("querying tags", err)
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

// GetTag retrieves a single tag by ID.
func (s *SQLiteStore) GetTag(ctx context.Context, id string) (*model.Tag, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM tags WHERE id = ?", id)
	if err != nil {
		return nil, apperr.NewCollaborator("querying tag", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperr.NewCollaborator("querying tag", err)
		}
		return nil, apperr.NewNotFound("tag", id)
	}
	var t model.Tag
	if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
		return nil, apperr.NewCollaborator("scanning tag row", err)
	}
	return &t, nil
}

// CreateTag inserts a new tag. Generates a UUID if ID is empty.
func (s *SQLiteStore) CreateTag(ctx context.Context, t model.Tag) (*model.Tag, error) {
	if strings.TrimSpace(t.Name) == "" {
		return nil, apperr.NewValidation("name", "must not be empty")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tags (id, name, color, created_at) VALUES (?, ?, ?, ?)",
		t.ID, t.Name, t.Color, t.CreatedAt,
	)
	if err != nil {
		return nil, apperr.NewCollaborator("creating tag", err)
	}

	s.publish(model.EntityTags)
	return &t, nil
}

// UpdateTag applies a partial update to a tag and returns the updated row.
func (s *SQLiteStore) UpdateTag(ctx context.Context, id string, patch TagPatch) (*model.Tag, error) {
	var set setClause
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperr.NewValidation("name", "must not be empty")
		}
		set.add("name", *patch.Name)
	}
	if patch.Color != nil {
		set.add("color", *patch.Color)
	}
	if set.empty() {
		return s.GetTag(ctx, id)
	}

	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE tags SET %s WHERE id = ?", set.sql()),
		append(set.args, id)...,
	)
	if err != nil {
		return nil, apperr.NewCollaborator("updating tag", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, apperr.NewNotFound("tag", id)
	}

	s.publish(model.EntityTags)
	return s.GetTag(ctx, id)
}

// DeleteTag removes a tag. CASCADE on task_tags removes associations.
func (s *SQLiteStore) DeleteTag(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tags WHERE id = ?", id)
	if err != nil {
		return apperr.NewCollaborator("deleting tag", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperr.NewNotFound("tag", id)
	}

	s.publish(model.EntityTags)
	return nil
}
