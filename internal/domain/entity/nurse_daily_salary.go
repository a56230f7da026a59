package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NurseDailySalary is one row per (nurse, calendar day).
//
// Recomputed in full from the day's task set on every task save or delete,
// never patched incrementally.
type NurseDailySalary struct {
	ID             int             `gorm:"primaryKey" json:"id"`
	NurseID        int             `gorm:"not null;uniqueIndex:idx_nurse_date" json:"nurse_id"`
	Date           time.Time       `gorm:"type:date;not null;uniqueIndex:idx_nurse_date" json:"date"`
	TotalTasks     int             `gorm:"not null;default:0" json:"total_tasks"`
	CompletedTasks int             `gorm:"not null;default:0" json:"completed_tasks"`
	Salary         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"salary"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Nurse NurseProfile `gorm:"foreignKey:NurseID" json:"nurse,omitempty"`
}

func (NurseDailySalary) TableName() string {
	return "nurse_daily_salaries"
}
