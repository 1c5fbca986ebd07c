// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Urgency levels for a blood request, from most to least pressing.
const (
	UrgencyCritical = "CRITICAL"
	UrgencyUrgent   = "URGENT"
	UrgencyNormal   = "NORMAL"
)

// UrgencyLevels lists the accepted urgency values in descending severity.
var UrgencyLevels = []string{UrgencyCritical, UrgencyUrgent, UrgencyNormal}

// Request statuses. The field is free-form in storage; these are the values
// the application itself writes or filters on. Volunteering and completion
// never transition the status; fulfilment is tracked per DonationEvent.
const (
	RequestStatusActive    = "Active"
	RequestStatusAccepted  = "Accepted"
	RequestStatusCompleted = "Completed"
)

// RequestStatuses lists the statuses the application writes or filters on.
var RequestStatuses = []string{RequestStatusActive, RequestStatusAccepted, RequestStatusCompleted}

// BloodRequest is a request for blood posted on behalf of a patient. The
// requester may be anonymous, in which case RequesterID is nil and workflow
// notifications to the requester are skipped.
type BloodRequest struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the request.
	RequesterID   *uuid.UUID // The user who posted the request, nil for anonymous posts.
	PatientName   string     // Name of the patient needing blood.
	BloodGroup    string     // Required blood group.
	Location      string     // Human-readable location description.
	Urgency       string     // One of the UrgencyLevels values.
	Hospital      string     // Hospital where the blood is needed.
	Latitude      *float64   // Geographic latitude, nil when unknown.
	Longitude     *float64   // Geographic longitude, nil when unknown.
	ContactNumber string     // Phone number to reach the requester.
	RequiredDate  time.Time  // Date the blood is needed by.
	Status        string     // Current status, defaults to Active.
	AcceptedAt    *time.Time // When the request left the Active status, used by retention.
	CreatedAt     time.Time  // Timestamp of when this request was posted.
}

// IsValidRequestStatus reports whether the given status is one the
// application recognizes.
func IsValidRequestStatus(status string) bool {
	for _, s := range RequestStatuses {
		if s == status {
			return true
		}
	}

	return false
}

// IsValidUrgency reports whether the given urgency is a recognized level.
func IsValidUrgency(urgency string) bool {
	for _, u := range UrgencyLevels {
		if u == urgency {
			return true
		}
	}

	return false
}
