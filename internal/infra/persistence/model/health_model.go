package model

import (
	"time"

	"github.com/google/uuid"
)

// VaccineRecordModel is the GORM-specific struct for the 'vaccine_records' table.
type VaccineRecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	VaccineName string    `gorm:"type:text;not null"`
	DoseNumber  int       `gorm:"not null;default:1"`
	DateTaken   time.Time `gorm:"not null"`
	Location    string    `gorm:"type:text"`
	CenterName  string    `gorm:"type:text"`
	Notes       string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VaccineRecordModel) TableName() string {
	return "vaccine_records"
}

// HealthReportModel is the GORM-specific struct for the 'health_reports' table.
type HealthReportModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	Title              string    `gorm:"type:text;not null"`
	HospitalName       string    `gorm:"type:text"`
	Description        string    `gorm:"type:text"`
	ReportDate         time.Time `gorm:"not null"`
	NextTestDate       *time.Time
	AllowNotifications bool `gorm:"not null;default:true"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (HealthReportModel) TableName() string {
	return "health_reports"
}
