package service

import (
	"context"

	"github.com/ptran/tracker/internal/model"
	"github.com/ptran/tracker/internal/store"
)

// The CRUD surface delegates to the store, which owns validation,
// id generation, and change publication. The tracker is still the
// single entry point so callers never hold both collaborators.

func (t *Tracker) ListProjects(ctx context.Context) ([]model.Project, error) {
	return t.store.ListProjects(ctx)
}

func (t *Tracker) GetProject(ctx context.Context, id string) (*model.Project, error) {
	return t.store.GetProject(ctx, id)
}

func (t *Tracker) CreateProject(ctx context.Context, p model.Project) (*model.Project, error) {
	return t.store.CreateProject(ctx, p)
}

func (t *Tracker) UpdateProject(ctx context.Context, id string, patch store.ProjectPatch) (*model.Project, error) {
	return t.store.UpdateProject(ctx, id, patch)
}

func (t *Tracker) DeleteProject(ctx context.Context, id string) error {
	return t.store.DeleteProject(ctx, id)
}

func (t *Tracker) ListTasks(ctx context.Context, filter store.TaskFilter) ([]model.Task, error) {
	return t.store.ListTasks(ctx, filter)
}

func (t *Tracker) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return t.store.GetTask(ctx, id)
}

func (t *Tracker) CreateTask(ctx context.Context, task model.Task) (*model.Task, error) {
	return t.store.CreateTask(ctx, task)
}

func (t *Tracker) UpdateTask(ctx context.Context, id string, patch store.TaskPatch) (*model.Task, error) {
	return t.store.UpdateTask(ctx, id, patch)
}

func (t *Tracker) DeleteTask(ctx context.Context, id string) error {
	return t.store.DeleteTask(ctx, id)
}

func (t *Tracker) SetTaskTags(ctx context.Context, taskID string, tagIDs []string) error {
	return t.store.SetTaskTags(ctx, taskID, tagIDs)
}

func (t *Tracker) ListProposals(ctx context.Context) ([]model.Proposal, error) {
	return t.store.ListProposals(ctx)
}

func (t *Tracker) GetProposal(ctx context.Context, id string) (*model.Proposal, error) {
	return t.store.GetProposal(ctx, id)
}

func (t *Tracker) CreateProposal(ctx context.Context, p model.Proposal) (*model.Proposal, error) {
	return t.store.CreateProposal(ctx, p)
}

func (t *Tracker) UpdateProposal(ctx context.Context, id string, patch store.ProposalPatch) (*model.Proposal, error) {
	return t.store.UpdateProposal(ctx, id, patch)
}

func (t *Tracker) DeleteProposal(ctx context.Context, id string) error {
	return t.store.DeleteProposal(ctx, id)
}

func (t *Tracker) ListTags(ctx context.Context) ([]model.Tag, error) {
	return t.store.ListTags(ctx)
}

func (t *Tracker) CreateTag(ctx context.Context, tag model.Tag) (*model.Tag, error) {
	return t.store.CreateTag(ctx, tag)
}

func (t *Tracker) UpdateTag(ctx context.Context, id string, patch store.TagPatch) (*model.Tag, error) {
	return t.store.UpdateTag(ctx, id, patch)
}

func (t *Tracker) DeleteTag(ctx context.Context, id string) error {
	return t.store.DeleteTag(ctx, id)
}

func (t *Tracker) ListComments(ctx context.Context, taskID string) ([]model.Comment, error) {
	return t.store.ListComments(ctx, taskID)
}

func (t *Tracker) CreateComment(ctx context.Context, c model.Comment) (*model.Comment, error) {
	return t.store.CreateComment(ctx, c)
}

func (t *Tracker) UpdateComment(ctx context.Context, id string, patch store.CommentPatch) (*model.Comment, error) {
	return t.store.UpdateComment(ctx, id, patch)
}

func (t *Tracker) DeleteComment(ctx context.Context, id string) error {
	return t.store.DeleteComment(ctx, id)
}

func (t *Tracker) RecentActivity(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	return t.store.ListActivity(ctx, limit)
}
