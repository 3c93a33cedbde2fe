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

// ListProjects retrieves all projects ordered by name.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM projects ORDER BY name")
	if err != nil {
		return nil, apperr.NewCollaborator("querying projects", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewCollaborator("reading project rows", err)
	}
	return projects, nil
}

// GetProject retrieves a single project by ID.
func (s *SQLiteStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM projects WHERE id = ?", id)
	if err != nil {
		return nil, apperr.NewCollaborator("querying project", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperr.NewCollaborator("querying project", err)
		}
		return nil, apperr.NewNotFound("project", id)
	}
	p, err := scanProject(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject inserts a new project. Generates a UUID if ID is empty.
func (s *SQLiteStore) CreateProject(ctx context.Context, p model.Project) (*model.Project, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, apperr.NewValidation("name", "must not be empty")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, description, color, start_date, end_date, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Color, p.StartDate, p.EndDate,
		boolToInt(p.IsActive), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.NewCollaborator("creating project", err)
	}

	s.publish(model.EntityProjects)
	return &p, nil
}

// UpdateProject applies a partial update to a project and returns the
// updated row. All supplied fields land in a single statement.
func (s *SQLiteStore) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*model.Project, error) {
	var set setClause
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperr.NewValidation("name", "must not be empty")
		}
		set.add("name", *patch.Name)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.Color != nil {
		set.add("color", *patch.Color)
	}
	if patch.StartDate != nil {
		set.add("start_date", patch.StartDate)
	}
	if patch.EndDate != nil {
		set.add("end_date", patch.EndDate)
	}
	if patch.IsActive != nil {
		set.add("is_active", boolToInt(*patch.IsActive))
	}
	if set.empty() {
		return s.GetProject(ctx, id)
	}
	set.add("updated_at", time.Now().UTC())

	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE projects SET %s WHERE id = ?", set.sql()),
		append(set.args, id)...,
	)
	if err != nil {
		return nil, apperr.NewCollaborator("updating project", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, apperr.NewNotFound("project", id)
	}

	s.publish(model.EntityProjects)
	return s.GetProject(ctx, id)
}

// DeleteProject removes a project. Associated tasks and proposals get
// project_id set to NULL.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return apperr.NewCollaborator("deleting project", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperr.NewNotFound("project", id)
	}

	s.publish(model.EntityProjects)
	return nil
}

// scanProject scans a project row from a sqlx.Rows result set.
func scanProject(rows *sqlx.Rows) (model.Project, error) {
	var (
		p         model.Project
		activeInt int
	)

	err := rows.Scan(
		&p.ID, &p.Name, &p.Description, &p.Color,
		&p.StartDate, &p.EndDate, &activeInt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.Project{}, apperr.NewCollaborator("scanning project row", err)
	}

	p.IsActive = activeInt != 0
	return p, nil
}
