// Command tracker opens the local tracker database and prints the
// dashboard rollup and recent activity. It is a thin inspection
// surface over the core; the interactive views live elsewhere.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ptran/tracker/internal/model"
	"github.com/ptran/tracker/internal/notify"
	"github.com/ptran/tracker/internal/service"
	"github.com/ptran/tracker/internal/store"
)

func main() {
	configPath := flag.String("config", model.DefaultConfigPath(), "path to config file")
	activityLimit := flag.Int("activity", 10, "number of recent activity entries to show")
	asJSON := flag.Bool("json", false, "emit JSON instead of text")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*configPath, *activityLimit, *asJSON, logger); err != nil {
		logger.Error("tracker failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, activityLimit int, asJSON bool, logger *slog.Logger) error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating database directory %s: %w", dir, err)
		}
	}

	hub := notify.NewHub(logger)
	defer hub.Close()

	st, err := store.NewSQLiteStore(cfg.Database.Path, cfg.Actor, hub)
	if err != nil {
		return err
	}
	defer st.Close()

	tracker := service.New(st, hub,
		service.WithUpcomingHorizon(cfg.Dashboard.UpcomingHorizonDays),
		service.WithUpcomingLimit(cfg.Dashboard.UpcomingLimit),
	)
	defer tracker.Close()

	ctx := context.Background()

	dashboard, err := tracker.Dashboard(ctx)
	if err != nil {
		return err
	}
	activity, err := tracker.RecentActivity(ctx, activityLimit)
	if err != nil {
		return err
	}

	if asJSON {
		out := struct {
			Dashboard model.DashboardMetrics `json:"dashboard"`
			Activity  []model.ActivityLog    `json:"activity"`
		}{dashboard, activity}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printDashboard(dashboard)
	printActivity(activity)
	return nil
}

func printDashboard(m model.DashboardMetrics) {
	fmt.Printf("Projects: %d\n", m.TotalProjects)
	fmt.Printf("Tasks: %d active, %d completed, %d overdue (%.1f%% complete)\n",
		m.ActiveTasks, m.CompletedTasks, m.OverdueTasks, m.CompletionRate)
	fmt.Printf("Proposal conversion: %.1f%%\n", m.ProposalConversionRate)

	if len(m.UpcomingDeadlines) > 0 {
		fmt.Println("\nUpcoming deadlines:")
		for _, t := range m.UpcomingDeadlines {
			fmt.Printf("  %s  %s\n", t.DueDate, t.Title)
		}
	}

	fmt.Println("\nBy status:")
	for _, sc := range m.TasksByStatus {
		fmt.Printf("  %-12s %d\n", model.StatusLabels[sc.Status], sc.Count)
	}
	fmt.Println("\nBy priority:")
	for _, pc := range m.TasksByPriority {
		fmt.Printf("  %-12s %d\n", model.PriorityLabels[pc.Priority], pc.Count)
	}
}

func printActivity(entries []model.ActivityLog) {
	if len(entries) == 0 {
		return
	}
	fmt.Println("\nRecent activity:")
	for _, e := range entries {
		fmt.Printf("  %s  %-6s %-9s %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Action, e.EntityType, e.Details)
	}
}
