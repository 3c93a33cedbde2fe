package metrics

import (
	"context"
	"sync"

	"github.com/ptran/tracker/internal/model"
	"github.com/ptran/tracker/internal/store"
)

// Load fetches the three source collections concurrently, waits for
// all of them, and computes the dashboard figures as of today. There
// is no cross-table transactional consistency and none is required; a
// close-enough snapshot is sufficient for the rollup. If any fetch
// fails, the whole computation fails with that error — no partial
// metrics.
func Load(ctx context.Context, st store.Store, today model.Date, opts Options) (model.DashboardMetrics, error) {
	var (
		wg        sync.WaitGroup
		projects  []model.Project
		tasks     []model.Task
		proposals []model.Proposal
	)
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		projects, errs[0] = st.ListProjects(ctx)
	}()
	go func() {
		defer wg.Done()
		tasks, errs[1] = st.ListTasks(ctx, store.TaskFilter{})
	}()
	go func() {
		defer wg.Done()
		proposals, errs[2] = st.ListProposals(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return model.DashboardMetrics{}, err
		}
	}

	return Compute(projects, tasks, proposals, today, opts), nil
}
