package repository

import (
	"errors"
	"time"

	"vetclinic-backoffice/internal/domain/entity"
	domainRepo "vetclinic-backoffice/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, id int) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("MedicalCard").Preload("ProcessedBy").
		Where("id = ?", id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByCardID(db *gorm.DB, cardID int) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("medical_card_id = ?", cardID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll(db *gorm.DB) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Preload("MedicalCard").Order("created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Update(db *gorm.DB, payment *entity.Payment) error {
	return db.Save(payment).Error
}

type paymentDayRepository struct{}

func NewPaymentDayRepository() domainRepo.PaymentDayRepository {
	return &paymentDayRepository{}
}

func (r *paymentDayRepository) Increment(db *gorm.DB, date time.Time, amount decimal.Decimal) error {
	if err := r.EnsureRow(db, date); err != nil {
		return err
	}
	var day entity.PaymentDay
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ?", date).
		First(&day).Error
	if err != nil {
		return err
	}
	day.Price = day.Price.Add(amount)
	return db.Save(&day).Error
}

func (r *paymentDayRepository) EnsureRow(db *gorm.DB, date time.Time) error {
	day := entity.PaymentDay{Date: date, Price: decimal.Zero}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&day).Error
}

func (r *paymentDayRepository) FindByDate(db *gorm.DB, date time.Time) (*entity.PaymentDay, error) {
	var day entity.PaymentDay
	err := db.Where("date = ?", date).First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

func (r *paymentDayRepository) FindAll(db *gorm.DB) ([]entity.PaymentDay, error) {
	var days []entity.PaymentDay
	if err := db.Order("date DESC").Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

type jobRunRepository struct{}

func NewJobRunRepository() domainRepo.JobRunRepository {
	return &jobRunRepository{}
}

func (r *jobRunRepository) GetForUpdate(db *gorm.DB, name string) (*entity.JobRun, error) {
	run := entity.JobRun{Name: name}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&run).Error; err != nil {
		return nil, err
	}
	var locked entity.JobRun
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(&locked).Error
	if err != nil {
		return nil, err
	}
	return &locked, nil
}

func (r *jobRunRepository) Save(db *gorm.DB, run *entity.JobRun) error {
	return db.Save(run).Error
}
