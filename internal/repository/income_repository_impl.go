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

type nurseDailySalaryRepository struct{}

func NewNurseDailySalaryRepository() domainRepo.NurseDailySalaryRepository {
	return &nurseDailySalaryRepository{}
}

func (r *nurseDailySalaryRepository) Upsert(db *gorm.DB, salary *entity.NurseDailySalary) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nurse_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_tasks", "completed_tasks", "salary", "updated_at"}),
	}).Create(salary).Error
}

func (r *nurseDailySalaryRepository) FindByNurseAndDate(db *gorm.DB, nurseID int, date time.Time) (*entity.NurseDailySalary, error) {
	var salary entity.NurseDailySalary
	err := db.Where("nurse_id = ? AND date = ?", nurseID, date).First(&salary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &salary, nil
}

func (r *nurseDailySalaryRepository) FindByNurseID(db *gorm.DB, nurseID int) ([]entity.NurseDailySalary, error) {
	var salaries []entity.NurseDailySalary
	err := db.Where("nurse_id = ?", nurseID).Order("date DESC").Find(&salaries).Error
	if err != nil {
		return nil, err
	}
	return salaries, nil
}

func (r *nurseDailySalaryRepository) FindAll(db *gorm.DB) ([]entity.NurseDailySalary, error) {
	var salaries []entity.NurseDailySalary
	err := db.Preload("Nurse.User").Order("date DESC").Find(&salaries).Error
	if err != nil {
		return nil, err
	}
	return salaries, nil
}

func (r *nurseDailySalaryRepository) SumByNurse(db *gorm.DB, nurseID int) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := db.Model(&entity.NurseDailySalary{}).
		Where("nurse_id = ?", nurseID).
		Select("COALESCE(SUM(salary), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

type nurseIncomeRepository struct{}

func NewNurseIncomeRepository() domainRepo.NurseIncomeRepository {
	return &nurseIncomeRepository{}
}

func (r *nurseIncomeRepository) FindByNurseIDForUpdate(db *gorm.DB, nurseID int) (*entity.NurseIncome, error) {
	var income entity.NurseIncome
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("nurse_id = ?", nurseID).
		First(&income).Error
	if err == nil {
		return &income, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	income = entity.NurseIncome{NurseID: nurseID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&income).Error; err != nil {
		return nil, err
	}
	err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("nurse_id = ?", nurseID).
		First(&income).Error
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func (r *nurseIncomeRepository) FindByNurseID(db *gorm.DB, nurseID int) (*entity.NurseIncome, error) {
	var income entity.NurseIncome
	err := db.Where("nurse_id = ?", nurseID).First(&income).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &income, nil
}

func (r *nurseIncomeRepository) Save(db *gorm.DB, income *entity.NurseIncome) error {
	return db.Save(income).Error
}

func (r *nurseIncomeRepository) FoldDailyIntoMonthly(db *gorm.DB) (int64, error) {
	result := db.Model(&entity.NurseIncome{}).
		Where("daily_total <> 0").
		Updates(map[string]interface{}{
			"monthly_total": gorm.Expr("monthly_total + daily_total"),
			"daily_total":   decimal.Zero,
		})
	return result.RowsAffected, result.Error
}

type doctorIncomeRepository struct{}

func NewDoctorIncomeRepository() domainRepo.DoctorIncomeRepository {
	return &doctorIncomeRepository{}
}

func (r *doctorIncomeRepository) FindByDoctorIDForUpdate(db *gorm.DB, doctorID int) (*entity.DoctorIncome, error) {
	var income entity.DoctorIncome
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("doctor_id = ?", doctorID).
		First(&income).Error
	if err == nil {
		return &income, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	income = entity.DoctorIncome{DoctorID: doctorID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&income).Error; err != nil {
		return nil, err
	}
	err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("doctor_id = ?", doctorID).
		First(&income).Error
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func (r *doctorIncomeRepository) FindByDoctorID(db *gorm.DB, doctorID int) (*entity.DoctorIncome, error) {
	var income entity.DoctorIncome
	err := db.Where("doctor_id = ?", doctorID).First(&income).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &income, nil
}

func (r *doctorIncomeRepository) Save(db *gorm.DB, income *entity.DoctorIncome) error {
	return db.Save(income).Error
}

func (r *doctorIncomeRepository) ResetAllMonthly(db *gorm.DB) (int64, error) {
	result := db.Model(&entity.DoctorIncome{}).
		Where("monthly_total <> 0").
		Update("monthly_total", decimal.Zero)
	return result.RowsAffected, result.Error
}
