package repository

import (
	"time"

	"vetclinic-backoffice/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type NurseDailySalaryRepository interface {
	// Upsert writes the full (nurse, day) aggregate, creating the row if
	// absent.
	Upsert(db *gorm.DB, salary *entity.NurseDailySalary) error
	FindByNurseAndDate(db *gorm.DB, nurseID int, date time.Time) (*entity.NurseDailySalary, error)
	FindByNurseID(db *gorm.DB, nurseID int) ([]entity.NurseDailySalary, error)
	FindAll(db *gorm.DB) ([]entity.NurseDailySalary, error)
	// SumByNurse returns the all-time salary total across daily rows.
	SumByNurse(db *gorm.DB, nurseID int) (decimal.Decimal, error)
}

// Income repositories back the append-only money ledgers. The ForUpdate
// variants lock the row (creating a zero row first if absent) so concurrent
// completions for the same staff member cannot lose updates.
type NurseIncomeRepository interface {
	FindByNurseIDForUpdate(db *gorm.DB, nurseID int) (*entity.NurseIncome, error)
	FindByNurseID(db *gorm.DB, nurseID int) (*entity.NurseIncome, error)
	Save(db *gorm.DB, income *entity.NurseIncome) error
	// FoldDailyIntoMonthly adds every daily total into its monthly total and
	// zeroes the daily column, in one statement.
	FoldDailyIntoMonthly(db *gorm.DB) (int64, error)
}

type DoctorIncomeRepository interface {
	FindByDoctorIDForUpdate(db *gorm.DB, doctorID int) (*entity.DoctorIncome, error)
	FindByDoctorID(db *gorm.DB, doctorID int) (*entity.DoctorIncome, error)
	Save(db *gorm.DB, income *entity.DoctorIncome) error
	ResetAllMonthly(db *gorm.DB) (int64, error)
}
