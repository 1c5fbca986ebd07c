package postgres

import (
	"raktapulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the application uses. Called by the
// seeding command; the server assumes the schema already exists.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProfileModel{},
		&model.DonorModel{},
		&model.BloodRequestModel{},
		&model.DonationEventModel{},
		&model.BadgeModel{},
		&model.UserBadgeModel{},
		&model.NotificationModel{},
		&model.MessageModel{},
		&model.BloodBankModel{},
		&model.HospitalModel{},
		&model.VaccineRecordModel{},
		&model.HealthReportModel{},
	)

	return errors.Wrap(err, "auto migrate")
}
