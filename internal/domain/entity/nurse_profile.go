package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NurseProfile holds nurse-specific data linked 1:1 to a user.
//
// SalaryPerDay mirrors today's NurseDailySalary row and is reset to zero by
// the daily rollover sweep. TotalSalary is the sum of all daily salary rows
// and is refreshed in full on every task mutation.
type NurseProfile struct {
	ID              int             `gorm:"primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	WorkStartDate   time.Time       `gorm:"type:date;not null" json:"work_start_date"`
	RatePerTask     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:10000" json:"rate_per_task"`
	SalaryPerDay    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"salary_per_day"`
	TotalSalary     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_salary"`
	ExperienceLevel *string         `gorm:"type:varchar(64)" json:"experience_level,omitempty"`
	Active          *bool           `gorm:"not null;default:true" json:"active"`
	CreatedByID     *int            `gorm:"index" json:"created_by_id,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (NurseProfile) TableName() string {
	return "nurse_profiles"
}
