package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/ptran/tracker/internal/apperr"
	"github.com/ptran/tracker/internal/model"
)

// ListActivity retrieves the most recent activity entries, newest
// first, up to limit (all entries when limit <= 0). Entries are
// written by the schema triggers; this is the only read path and there
// is no write path.
func (s *SQLiteStore) ListActivity(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	query := "SELECT * FROM activity_log ORDER BY created_at DESC, id"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.NewCollaborator("querying activity log", err)
	}
	defer rows.Close()

	var entries []model.ActivityLog
	for rows.Next() {
		e, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewCollaborator("reading activity rows", err)
	}
	return entries, nil
}

// scanActivity scans an activity row from a sqlx.Rows result set.
func scanActivity(rows *sqlx.Rows) (model.ActivityLog, error) {
	var (
		e          model.ActivityLog
		entityType string
		details    sql.NullString
		actor      sql.NullString
	)

	err := rows.Scan(
		&e.ID, &entityType, &e.EntityID, &e.Action,
		&details, &actor, &e.CreatedAt,
	)
	if err != nil {
		return model.ActivityLog{}, apperr.NewCollaborator("scanning activity row", err)
	}

	e.EntityType = model.EntityType(entityType)
	e.Details = details.String
	e.Actor = actor.String
	return e, nil
}
