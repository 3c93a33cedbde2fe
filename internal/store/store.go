// Package store defines the persistence collaborator interface and a
// SQLite reference implementation. The core consumes the Store
// interface only; atomicity of a single update is the store's promise.
package store

import (
	"context"

	"github.com/ptran/tracker/internal/model"
)

// TaskFilter controls filtering for task list queries. Results are
// always ordered by position ascending (the manual kanban ordering).
type TaskFilter struct {
	ProjectID *string
	Status    *model.TaskStatus
	Priority  *model.TaskPriority
}

// ProjectPatch is a partial update for a project. Nil fields are left
// untouched; all supplied fields land in one statement.
type ProjectPatch struct {
	Name        *string
	Description *string
	Color       *string
	StartDate   *model.Date
	EndDate     *model.Date
	IsActive    *bool
}

// TaskPatch is a partial update for a task. completed_at is managed by
// the store: it is stamped when Status moves to completed and cleared
// when Status moves away.
type TaskPatch struct {
	ProjectID      *string
	Title          *string
	Description    *string
	Priority       *model.TaskPriority
	Status         *model.TaskStatus
	StartDate      *model.Date
	DueDate        *model.Date
	AssignedTo     *string
	DependsOn      *string
	EstimatedHours *float64
	ActualHours    *float64
	Position       *int
}

// ProposalPatch is a partial update for a proposal. Stage assignment
// through a patch is the unguarded correction path; only the stage
// machine's advance stamps dates.
type ProposalPatch struct {
	ProjectID          *string
	Title              *string
	Description        *string
	ClientName         *string
	ClientEmail        *string
	Value              *float64
	Stage              *model.Stage
	ProbabilityToClose *int
	DraftDate          *model.Date
	SentDate           *model.Date
	ReviewDate         *model.Date
	NegotiationDate    *model.Date
	RevisionDate       *model.Date
	ApprovalDate       *model.Date
	SignedDate         *model.Date
	Notes              *string
}

// SetStageDate sets the patch field recording when stage s was
// entered. The mapping is spelled out per stage; field names are not
// derivable from stage names.
func (p *ProposalPatch) SetStageDate(s model.Stage, d model.Date) {
	switch s {
	case model.StageDraft:
		p.DraftDate = &d
	case model.StageSentToClient:
		p.SentDate = &d
	case model.StageClientReview:
		p.ReviewDate = &d
	case model.StageNegotiation:
		p.NegotiationDate = &d
	case model.StageRevision:
		p.RevisionDate = &d
	case model.StageApproved:
		p.ApprovalDate = &d
	case model.StageContractSigned:
		p.SignedDate = &d
	}
}

// TagPatch is a partial update for a tag.
type TagPatch struct {
	Name  *string
	Color *string
}

// CommentPatch is a partial update for a comment.
type CommentPatch struct {
	Content *string
	Author  *string
}

// Store is the persistence collaborator. Every entity supports the
// same five shapes: list, get, create, update (partial), delete.
// Implementations report missing rows as apperr.NotFoundError, bad
// field values as apperr.ValidationError, and everything else as
// apperr.CollaboratorError.
type Store interface {
	// === Projects ===

	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	CreateProject(ctx context.Context, p model.Project) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// === Tasks ===

	ListTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (*model.Task, error)
	CreateTask(ctx context.Context, t model.Task) (*model.Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	SetTaskTags(ctx context.Context, taskID string, tagIDs []string) error
	TagsForTask(ctx context.Context, taskID string) ([]model.Tag, error)

	// === Proposals ===

	ListProposals(ctx context.Context) ([]model.Proposal, error)
	GetProposal(ctx context.Context, id string) (*model.Proposal, error)
	CreateProposal(ctx context.Context, p model.Proposal) (*model.Proposal, error)
	UpdateProposal(ctx context.Context, id string, patch ProposalPatch) (*model.Proposal, error)
	DeleteProposal(ctx context.Context, id string) error

	// === Tags ===

	ListTags(ctx context.Context) ([]model.Tag, error)
	GetTag(ctx context.Context, id string) (*model.Tag, error)
	CreateTag(ctx context.Context, t model.Tag) (*model.Tag, error)
	UpdateTag(ctx context.Context, id string, patch TagPatch) (*model.Tag, error)
	DeleteTag(ctx context.Context, id string) error

	// === Comments ===

	ListComments(ctx context.Context, taskID string) ([]model.Comment, error)
	GetComment(ctx context.Context, id string) (*model.Comment, error)
	CreateComment(ctx context.Context, c model.Comment) (*model.Comment, error)
	UpdateComment(ctx context.Context, id string, patch CommentPatch) (*model.Comment, error)
	DeleteComment(ctx context.Context, id string) error

	// === Activity feed (read-only; rows come from change triggers) ===

	ListActivity(ctx context.Context, limit int) ([]model.ActivityLog, error)
}
