package repository

import (
	"context"
)

// RepositoryFactory hands out repositories bound to one transaction. Every
// repository obtained from the same factory shares the same transactional
// context.
type RepositoryFactory interface {
	UserRepo() UserRepository
	DonorRepo() DonorRepository
	RequestRepo() RequestRepository
	DonationRepo() DonationRepository
	BadgeRepo() BadgeRepository
	NotificationRepo() NotificationRepository
}

// TransactionManager executes multi-step writes atomically. The function
// receives a RepositoryFactory whose repositories all operate within the
// same transaction; returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}
