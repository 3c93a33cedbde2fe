package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptran/tracker/internal/model"
	"github.com/ptran/tracker/internal/store"
	"github.com/ptran/tracker/tests/testutil"
)

// Activity entries are written by schema triggers, so they appear for
// every mutation without any application code asking for them.
func TestActivityRecordsMutations(t *testing.T) {
	s := testutil.NewTestStore(t, nil)
	ctx := context.Background()

	task, err := s.CreateTask(ctx, model.Task{Title: "Audited"})
	require.NoError(t, err)
	_, err = s.UpdateTask(ctx, task.ID, store.TaskPatch{Title: strPtr("Audited twice")})
	require.NoError(t, err)
	require.NoError(t, s.DeleteTask(ctx, task.ID))

	entries, err := s.ListActivity(ctx, 0)
	require.NoError(t, err)

	byAction := map[string]int{}
	for _, e := range entries {
		require.Equal(t, model.EntityTasks, e.EntityType)
		require.Equal(t, task.ID, e.EntityID)
		require.Equal(t, "tester", e.Actor)
		require.NotEmpty(t, e.ID)
		byAction[e.Action]++
	}
	require.Equal(t, 1, byAction[model.ActionInsert])
	require.Equal(t, 1, byAction[model.ActionUpdate])
	require.Equal(t, 1, byAction[model.ActionDelete])
}

func TestActivityDetailsSnapshot(t *testing.T) {
	s := testutil.NewTestStore(t, nil)
	ctx := context.Background()

	p, err := s.CreateProject(ctx, model.Project{Name: "Snapshot", IsActive: true})
	require.NoError(t, err)

	entries, err := s.ListActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, model.EntityProjects, entries[0].EntityType)
	require.Equal(t, p.ID, entries[0].EntityID)
	require.JSONEq(t, `{"name":"Snapshot"}`, entries[0].Details)
}

func TestActivityLimit(t *testing.T) {
	s := testutil.NewTestStore(t, nil)
	ctx := context.Background()

	for _, name := range []string{"one", "two", "three", "four"} {
		_, err := s.CreateTag(ctx, model.Tag{Name: name})
		require.NoError(t, err)
	}

	entries, err := s.ListActivity(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	all, err := s.ListActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestActivityCoversAllEntityTypes(t *testing.T) {
	s := testutil.NewTestStore(t, nil)
	ctx := context.Background()

	proj, err := s.CreateProject(ctx, model.Project{Name: "p", IsActive: true})
	require.NoError(t, err)
	task, err := s.CreateTask(ctx, model.Task{Title: "t", ProjectID: &proj.ID})
	require.NoError(t, err)
	_, err = s.CreateProposal(ctx, model.Proposal{Title: "prop"})
	require.NoError(t, err)
	_, err = s.CreateTag(ctx, model.Tag{Name: "tag"})
	require.NoError(t, err)
	_, err = s.CreateComment(ctx, model.Comment{TaskID: task.ID, Content: "c"})
	require.NoError(t, err)

	entries, err := s.ListActivity(ctx, 0)
	require.NoError(t, err)

	seen := map[model.EntityType]bool{}
	for _, e := range entries {
		seen[e.EntityType] = true
	}
	for _, want := range []model.EntityType{
		model.EntityProjects, model.EntityTasks, model.EntityProposals,
		model.EntityTags, model.EntityComments,
	} {
		require.True(t, seen[want], "no activity entry for %s", want)
	}
}
