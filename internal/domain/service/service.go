// Package service defines interfaces for domain-level collaborators that
// are implemented by the infrastructure layer.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService issues and verifies the access tokens used by the HTTP
// delivery layer.
type TokenService interface {
	// Generate issues a signed token for the user.
	Generate(userID uuid.UUID, username string, ttl time.Duration) (string, error)

	// Verify parses and validates a token, returning the user ID and
	// username it was issued for.
	Verify(token string) (uuid.UUID, string, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) error
}

// SMSSender delivers short text alerts to a phone number. The emergency
// ping fans out through this interface.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// QRCodeGenerator renders a payload as a PNG QR code.
type QRCodeGenerator interface {
	GeneratePNG(content string) ([]byte, error)
}

// RateLimiter enforces a minimum interval between repeated actions by the
// same actor.
type RateLimiter interface {
	// Allow reports whether the action identified by key may proceed. The
	// first caller within a window wins; later calls are rejected until the
	// window passes.
	Allow(ctx context.Context, key string, window time.Duration) (bool, error)
}
