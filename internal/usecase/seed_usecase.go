package usecase

import (
	"context"
)

// SeedUsecase populates the reference catalogs. Safe to run repeatedly.
type SeedUsecase interface {
	// SeedCatalogs upserts the hospital catalog and creates any missing
	// badges.
	SeedCatalogs(ctx context.Context) error
}
