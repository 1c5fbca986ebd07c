package usecase

import (
	"context"
)

// CleanupReport summarizes one retention run.
type CleanupReport struct {
	CriticalRemoved int64
	UrgentRemoved   int64
	NormalRemoved   int64
	InactiveRemoved int64
}

// Total returns the number of requests removed across all categories.
func (r CleanupReport) Total() int64 {
	return r.CriticalRemoved + r.UrgentRemoved + r.NormalRemoved + r.InactiveRemoved
}

// RetentionUsecase removes blood requests that outlived their usefulness.
type RetentionUsecase interface {
	// CleanupStale deletes active requests older than their per-urgency
	// threshold and non-active requests older than the inactive threshold.
	CleanupStale(ctx context.Context) (*CleanupReport, error)
}
