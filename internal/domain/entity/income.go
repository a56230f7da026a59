package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NurseIncome is the append-only earnings ledger for one nurse.
//
// DailyTotal grows by the task price on each first-time completion and is
// never decremented; the daily rollover folds it into MonthlyTotal. Deleting
// a completed task does not reverse income.
type NurseIncome struct {
	ID           int             `gorm:"primaryKey" json:"id"`
	NurseID      int             `gorm:"not null;uniqueIndex" json:"nurse_id"`
	DailyTotal   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"daily_total"`
	MonthlyTotal decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"monthly_total"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Nurse NurseProfile `gorm:"foreignKey:NurseID" json:"nurse,omitempty"`
}

func (NurseIncome) TableName() string {
	return "nurse_incomes"
}

// DoctorIncome is the append-only earnings ledger for one doctor.
// MonthlyTotal resets on the first day of each month.
type DoctorIncome struct {
	ID           int             `gorm:"primaryKey" json:"id"`
	DoctorID     int             `gorm:"not null;uniqueIndex" json:"doctor_id"`
	MonthlyTotal decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"monthly_total"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorIncome) TableName() string {
	return "doctor_incomes"
}
