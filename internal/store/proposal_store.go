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

// ListProposals retrieves all proposals ordered by creation time
// descending, each carrying its joined project.
func (s *SQLiteStore) ListProposals(ctx context.Context) ([]model.Proposal, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM proposals ORDER BY created_at DESC")
	if err != nil {
		return nil, apperr.NewCollaborator("querying proposals", err)
	}
	defer rows.Close()

	var proposals []model.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewCollaborator("reading proposal rows", err)
	}

	if err := s.attachProposalProjects(ctx, proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

// GetProposal retrieves a single proposal by ID.
func (s *SQLiteStore) GetProposal(ctx context.Context, id string) (*model.Proposal, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM proposals WHERE id = ?", id)
	if err != nil {
		return nil, apperr.NewCollaborator("querying proposal", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperr.NewCollaborator("querying proposal", err)
		}
		return nil, apperr.NewNotFound("proposal", id)
	}
	p, err := scanProposal(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProposal inserts a new proposal. Generates a UUID if ID is
// empty and defaults the stage to draft with today's draft date.
func (s *SQLiteStore) CreateProposal(ctx context.Context, p model.Proposal) (*model.Proposal, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, apperr.NewValidation("title", "must not be empty")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Stage == "" {
		p.Stage = model.StageDraft
	}
	if !p.Stage.IsValid() {
		return nil, apperr.NewValidation("stage", fmt.Sprintf("unknown stage %q", p.Stage))
	}
	if p.ProbabilityToClose < 0 || p.ProbabilityToClose > 100 {
		return nil, apperr.NewValidation("probability_to_close", "must be between 0 and 100")
	}
	if p.Stage == model.StageDraft && p.DraftDate == nil {
		today := model.Today()
		p.DraftDate = &today
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO proposals (
			id, project_id, title, description, client_name, client_email,
			value, stage, probability_to_close,
			draft_date, sent_date, review_date, negotiation_date,
			revision_date, approval_date, signed_date,
			notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ProjectID, p.Title, p.Description, p.ClientName, p.ClientEmail,
		p.Value, string(p.Stage), p.ProbabilityToClose,
		p.DraftDate, p.SentDate, p.ReviewDate, p.NegotiationDate,
		p.RevisionDate, p.ApprovalDate, p.SignedDate,
		p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.NewCollaborator("creating proposal", err)
	}

	s.publish(model.EntityProposals)
	return &p, nil
}

// UpdateProposal applies a partial update to a proposal and returns
// the updated row. Stage assignment here is unguarded: any stage,
// forward or backward, is accepted as a correction path.
func (s *SQLiteStore) UpdateProposal(ctx context.Context, id string, patch ProposalPatch) (*model.Proposal, error) {
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
	if patch.ClientName != nil {
		set.add("client_name", *patch.ClientName)
	}
	if patch.ClientEmail != nil {
		set.add("client_email", *patch.ClientEmail)
	}
	if patch.Value != nil {
		set.add("value", *patch.Value)
	}
	if patch.Stage != nil {
		if !patch.Stage.IsValid() {
			return nil, apperr.NewValidation("stage", fmt.Sprintf("unknown stage %q", *patch.Stage))
		}
		set.add("stage", string(*patch.Stage))
	}
	if patch.ProbabilityToClose != nil {
		if *patch.ProbabilityToClose < 0 || *patch.ProbabilityToClose > 100 {
			return nil, apperr.NewValidation("probability_to_close", "must be between 0 and 100")
		}
		set.add("probability_to_close", *patch.ProbabilityToClose)
	}
	if patch.DraftDate != nil {
		set.add("draft_date", patch.DraftDate)
	}
	if patch.SentDate != nil {
		set.add("sent_date", patch.SentDate)
	}
	if patch.ReviewDate != nil {
		set.add("review_date", patch.ReviewDate)
	}
	if patch.NegotiationDate != nil {
		set.add("negotiation_date", patch.NegotiationDate)
	}
	if patch.RevisionDate != nil {
		set.add("revision_date", patch.RevisionDate)
	}
	if patch.ApprovalDate != nil {
		set.add("approval_date", patch.ApprovalDate)
	}
	if patch.SignedDate != nil {
		set.add("signed_date", patch.SignedDate)
	}
	if patch.Notes != nil {
		set.add("notes", *patch.Notes)
	}
	if set.empty() {
		return s.GetProposal(ctx, id)
	}
	set.add("updated_at", time.Now().UTC())

	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE proposals SET %s WHERE id = ?", set.sql()),
		append(set.args, id)...,
	)
	if err != nil {
		return nil, apperr.NewCollaborator("updating proposal", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, apperr.NewNotFound("proposal", id)
	}

	s.publish(model.EntityProposals)
	return s.GetProposal(ctx, id)
}

// DeleteProposal removes a proposal by ID.
func (s *SQLiteStore) DeleteProposal(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM proposals WHERE id = ?", id)
	if err != nil {
		return apperr.NewCollaborator("deleting proposal", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperr.NewNotFound("proposal", id)
	}

	s.publish(model.EntityProposals)
	return nil
}

// attachProposalProjects populates the joined Project on proposals.
func (s *SQLiteStore) attachProposalProjects(ctx context.Context, proposals []model.Proposal) error {
	needs := false
	for _, p := range proposals {
		if p.ProjectID != nil {
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

	for i := range proposals {
		if proposals[i].ProjectID == nil {
			continue
		}
		if p, ok := byID[*proposals[i].ProjectID]; ok {
			proj := p
			proposals[i].Project = &proj
		}
	}
	return nil
}

// scanProposal scans a proposal row from a sqlx.Rows result set.
func scanProposal(rows *sqlx.Rows) (model.Proposal, error) {
	var (
		p     model.Proposal
		stage string
	)

	err := rows.Scan(
		&p.ID, &p.ProjectID, &p.Title, &p.Description, &p.ClientName, &p.ClientEmail,
		&p.Value, &stage, &p.ProbabilityToClose,
		&p.DraftDate, &p.SentDate, &p.ReviewDate, &p.NegotiationDate,
		&p.RevisionDate, &p.ApprovalDate, &p.SignedDate,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.Proposal{}, apperr.NewCollaborator("scanning proposal row", err)
	}

	p.Stage = model.Stage(stage)
	return p, nil
}
