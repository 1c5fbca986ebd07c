package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GORM surfaces PostgreSQL constraint violations as its own sentinel errors,
// so the checks stay driver-agnostic here.

// isUniqueConstraintViolation reports whether the error is a duplicate key.
// Hit by double volunteering (unique donor+request event), repeat donor
// registration and username or email reuse.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKeyConstraintViolation reports whether the error references a
// missing row, e.g. a notification or message pointing at a deleted account.
func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
