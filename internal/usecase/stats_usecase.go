package usecase

import (
	"context"
)

// DashboardStats aggregates the homepage counters.
type DashboardStats struct {
	TotalDonors        int64
	ActiveRequests     int64
	TotalStock         int64
	CompletedDonations int64
	LivesSaved         int64
	VaccinatedPercent  int
}

// StatsUsecase computes the public dashboard aggregates.
type StatsUsecase interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
