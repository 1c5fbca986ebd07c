// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VaccineRecord is one vaccination dose recorded by a user.
type VaccineRecord struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the record.
	UserID      uuid.UUID // The user this record belongs to.
	VaccineName string    // Name of the vaccine.
	DoseNumber  int       // Dose sequence number, starting at 1.
	DateTaken   time.Time // Date the dose was taken.
	Location    string    // Where the dose was administered.
	CenterName  string    // Optional vaccination center name.
	Notes       string    // Optional free-form notes.
	CreatedAt   time.Time // Timestamp of when this record was created.
}

// HealthReport is a medical report uploaded by a user. The file itself is
// stored by an external storage collaborator; the core keeps the metadata.
type HealthReport struct {
	ID                 uuid.UUID  // The Global Unique Identifier (GUID) for the report.
	UserID             uuid.UUID  // The user this report belongs to.
	Title              string     // Report title.
	HospitalName       string     // Hospital that issued the report.
	Description        string     // Optional description.
	ReportDate         time.Time  // Date the report was issued.
	NextTestDate       *time.Time // Optional follow-up date.
	AllowNotifications bool       // Whether the user opted into follow-up reminders.
	CreatedAt          time.Time  // Timestamp of when this report was uploaded.
}

// VaccinationStats aggregates the donor pool's vaccination coverage.
type VaccinationStats struct {
	TotalDonors     int64 // All registered donors.
	VaccinatedCount int64 // Donors whose status indicates full vaccination.
	Percentage      int   // VaccinatedCount over TotalDonors, in whole percent.
}
