// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonationEvent records one donor's commitment to fulfil one specific blood
// request. Several donors may volunteer for the same request; each commitment
// is completed independently. At most one event exists per (donor, request)
// pair, enforced by a storage unique index.
type DonationEvent struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the event.
	DonorID     uuid.UUID // The donor record behind this commitment.
	RequestID   uuid.UUID // The blood request being fulfilled.
	DonorUserID uuid.UUID // The user account acting as the donor.
	Date        time.Time // When the donor volunteered.
	IsCompleted bool      // Whether the donation was confirmed as done.
	CompletedAt *time.Time // When completion was confirmed, nil while pending.
}
