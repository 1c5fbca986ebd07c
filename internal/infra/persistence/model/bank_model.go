package model

import (
	"time"

	"github.com/google/uuid"
)

// BloodBankModel is the GORM-specific struct for the 'blood_banks' table.
type BloodBankModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:text;not null"`
	Location      string    `gorm:"type:text"`
	Latitude      *float64  `gorm:"type:decimal(10,8)"`
	Longitude     *float64  `gorm:"type:decimal(11,8)"`
	ContactNumber string    `gorm:"type:text"`
	Is24x7        bool      `gorm:"not null;default:false"`
	TotalCapacity int       `gorm:"not null;default:0"`
	StockAPlus    int       `gorm:"column:stock_a_plus;not null;default:0"`
	StockAMinus   int       `gorm:"column:stock_a_minus;not null;default:0"`
	StockBPlus    int       `gorm:"column:stock_b_plus;not null;default:0"`
	StockBMinus   int       `gorm:"column:stock_b_minus;not null;default:0"`
	StockOPlus    int       `gorm:"column:stock_o_plus;not null;default:0"`
	StockOMinus   int       `gorm:"column:stock_o_minus;not null;default:0"`
	StockABPlus   int       `gorm:"column:stock_ab_plus;not null;default:0"`
	StockABMinus  int       `gorm:"column:stock_ab_minus;not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BloodBankModel) TableName() string {
	return "blood_banks"
}
