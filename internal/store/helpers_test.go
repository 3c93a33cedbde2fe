package store_test

import (
	"time"

	"github.com/ptran/tracker/internal/model"
)

func strPtr(s string) *string                          { return &s }
func intPtr(n int) *int                                { return &n }
func floatPtr(f float64) *float64                      { return &f }
func boolPtr(b bool) *bool                             { return &b }
func statusPtr(s model.TaskStatus) *model.TaskStatus   { return &s }
func prioPtr(p model.TaskPriority) *model.TaskPriority { return &p }
func stagePtr(s model.Stage) *model.Stage              { return &s }

func datePtr(y int, m time.Month, d int) *model.Date {
	dd := model.NewDate(y, m, d)
	return &dd
}
