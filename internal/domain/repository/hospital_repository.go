package repository

import (
	"context"

	"raktapulse/internal/domain/entity"
)

// HospitalRepository defines the standard operations for the hospital
// catalog.
type HospitalRepository interface {
	// FindAll retrieves every hospital, unordered. The proximity ranker
	// owns all ordering.
	FindAll(ctx context.Context) ([]*entity.Hospital, error)

	// Upsert inserts a hospital or updates the existing row with the same
	// name. Used by the catalog seeder so reruns stay idempotent.
	Upsert(ctx context.Context, hospital *entity.Hospital) error

	// Count returns the number of hospitals in the catalog.
	Count(ctx context.Context) (int64, error)
}
