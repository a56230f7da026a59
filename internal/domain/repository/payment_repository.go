package repository

import (
	"time"

	"vetclinic-backoffice/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id int) (*entity.Payment, error)
	FindByCardID(db *gorm.DB, cardID int) (*entity.Payment, error)
	FindAll(db *gorm.DB) ([]entity.Payment, error)
	Update(db *gorm.DB, payment *entity.Payment) error
}

type PaymentDayRepository interface {
	// Increment adds amount to the date's row under a row lock, creating the
	// row with a zero base if absent.
	Increment(db *gorm.DB, date time.Time, amount decimal.Decimal) error
	// EnsureRow creates the date's zero row if it does not exist.
	EnsureRow(db *gorm.DB, date time.Time) error
	FindByDate(db *gorm.DB, date time.Time) (*entity.PaymentDay, error)
	FindAll(db *gorm.DB) ([]entity.PaymentDay, error)
}

type JobRunRepository interface {
	// GetForUpdate returns the job's marker row locked, creating a zero-time
	// row if absent.
	GetForUpdate(db *gorm.DB, name string) (*entity.JobRun, error)
	Save(db *gorm.DB, run *entity.JobRun) error
}
