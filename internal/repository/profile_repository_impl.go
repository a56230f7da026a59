package repository

import (
	"errors"

	"vetclinic-backoffice/internal/domain/entity"
	domainRepo "vetclinic-backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByID(db *gorm.DB, id int) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	if err := db.Preload("User").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Save(profile).Error
}

type nurseProfileRepository struct{}

func NewNurseProfileRepository() domainRepo.NurseProfileRepository {
	return &nurseProfileRepository{}
}

func (r *nurseProfileRepository) Create(db *gorm.DB, profile *entity.NurseProfile) error {
	return db.Create(profile).Error
}

func (r *nurseProfileRepository) FindByID(db *gorm.DB, id int) (*entity.NurseProfile, error) {
	var profile entity.NurseProfile
	err := db.Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *nurseProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.NurseProfile, error) {
	var profile entity.NurseProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *nurseProfileRepository) FindAll(db *gorm.DB) ([]entity.NurseProfile, error) {
	var profiles []entity.NurseProfile
	if err := db.Preload("User").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *nurseProfileRepository) Update(db *gorm.DB, profile *entity.NurseProfile) error {
	return db.Save(profile).Error
}

// ResetAllSalaryPerDay zeroes every nurse's current-day salary snapshot.
// Runs once per calendar day from the daily rollover sweep.
func (r *nurseProfileRepository) ResetAllSalaryPerDay(db *gorm.DB) (int64, error) {
	result := db.Model(&entity.NurseProfile{}).
		Where("salary_per_day <> 0").
		Update("salary_per_day", 0)
	return result.RowsAffected, result.Error
}

type clientProfileRepository struct{}

func NewClientProfileRepository() domainRepo.ClientProfileRepository {
	return &clientProfileRepository{}
}

func (r *clientProfileRepository) Create(db *gorm.DB, profile *entity.ClientProfile) error {
	return db.Create(profile).Error
}

func (r *clientProfileRepository) FindByID(db *gorm.DB, id int) (*entity.ClientProfile, error) {
	var profile entity.ClientProfile
	err := db.Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *clientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ClientProfile, error) {
	var profile entity.ClientProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *clientProfileRepository) FindAll(db *gorm.DB) ([]entity.ClientProfile, error) {
	var profiles []entity.ClientProfile
	if err := db.Preload("User").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *clientProfileRepository) Update(db *gorm.DB, profile *entity.ClientProfile) error {
	return db.Save(profile).Error
}

type moderatorProfileRepository struct{}

func NewModeratorProfileRepository() domainRepo.ModeratorProfileRepository {
	return &moderatorProfileRepository{}
}

func (r *moderatorProfileRepository) Create(db *gorm.DB, profile *entity.ModeratorProfile) error {
	return db.Create(profile).Error
}

func (r *moderatorProfileRepository) FindByID(db *gorm.DB, id int) (*entity.ModeratorProfile, error) {
	var profile entity.ModeratorProfile
	err := db.Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *moderatorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ModeratorProfile, error) {
	var profile entity.ModeratorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *moderatorProfileRepository) Update(db *gorm.DB, profile *entity.ModeratorProfile) error {
	return db.Save(profile).Error
}
