package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ptran/tracker/internal/apperr"
	"github.com/ptran/tracker/internal/metrics"
	"github.com/ptran/tracker/internal/model"
	"github.com/ptran/tracker/internal/store"
	"github.com/ptran/tracker/tests/testutil"
)

func TestLoadAgainstStore(t *testing.T) {
	s := testutil.NewTestStore(t, nil)
	ctx := context.Background()

	_, err := s.CreateProject(ctx, model.Project{Name: "p", IsActive: true})
	require.NoError(t, err)
	_, err = s.CreateTask(ctx, model.Task{Title: "open"})
	require.NoError(t, err)
	_, err = s.CreateTask(ctx, model.Task{Title: "done", Status: model.StatusCompleted})
	require.NoError(t, err)
	_, err = s.CreateProposal(ctx, model.Proposal{Title: "won", Stage: model.StageContractSigned})
	require.NoError(t, err)

	m, err := metrics.Load(ctx, s, model.Today(), metrics.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, m.TotalProjects)
	require.Equal(t, 1, m.ActiveTasks)
	require.Equal(t, 1, m.CompletedTasks)
	require.Equal(t, 50.0, m.CompletionRate)
	require.Equal(t, 100.0, m.ProposalConversionRate)
}

// brokenStore fails one of the three source fetches.
type brokenStore struct {
	store.Store
}

func (b *brokenStore) ListProposals(ctx context.Context) ([]model.Proposal, error) {
	return nil, apperr.NewCollaborator("querying proposals", context.DeadlineExceeded)
}

func TestLoadFailsFast(t *testing.T) {
	s := testutil.NewTestStore(t, nil)
	ctx := context.Background()

	_, err := s.CreateTask(ctx, model.Task{Title: "present"})
	require.NoError(t, err)

	start := time.Now()
	_, err = metrics.Load(ctx, &brokenStore{Store: s}, model.Today(), metrics.Options{})
	require.True(t, apperr.IsCollaborator(err))
	require.Less(t, time.Since(start), 5*time.Second)
}
