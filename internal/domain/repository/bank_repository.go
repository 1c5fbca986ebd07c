package repository

import (
	"context"
	"errors"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBankNotFound is returned when a blood bank is not found.
var ErrBankNotFound = errors.New("blood bank not found")

// BankRepository defines the standard operations for blood bank persistence.
type BankRepository interface {
	// Create persists a new blood bank.
	Create(ctx context.Context, bank *entity.BloodBank) error

	// FindByID retrieves a single blood bank by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodBank, error)

	// FindAll retrieves every blood bank, unordered. The proximity ranker
	// owns all ordering.
	FindAll(ctx context.Context) ([]*entity.BloodBank, error)

	// Update modifies an existing blood bank, stock levels included.
	Update(ctx context.Context, bank *entity.BloodBank) error
}
