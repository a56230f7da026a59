package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile holds doctor-specific data linked 1:1 to a user
type DoctorProfile struct {
	ID             int             `gorm:"primaryKey" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialization string          `gorm:"type:varchar(255);not null" json:"specialization"`
	WorkStartDate  time.Time       `gorm:"type:date;not null" json:"work_start_date"`
	SalaryPerCase  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"salary_per_case"`
	Active         *bool           `gorm:"not null;default:true" json:"active"`
	CreatedByID    *int            `gorm:"index" json:"created_by_id,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
