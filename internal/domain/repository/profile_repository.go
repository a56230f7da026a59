package repository

import (
	"vetclinic-backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByID(db *gorm.DB, id int) (*entity.DoctorProfile, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
}

type NurseProfileRepository interface {
	Create(db *gorm.DB, profile *entity.NurseProfile) error
	FindByID(db *gorm.DB, id int) (*entity.NurseProfile, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.NurseProfile, error)
	FindAll(db *gorm.DB) ([]entity.NurseProfile, error)
	Update(db *gorm.DB, profile *entity.NurseProfile) error
	ResetAllSalaryPerDay(db *gorm.DB) (int64, error)
}

type ClientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ClientProfile) error
	FindByID(db *gorm.DB, id int) (*entity.ClientProfile, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ClientProfile, error)
	FindAll(db *gorm.DB) ([]entity.ClientProfile, error)
	Update(db *gorm.DB, profile *entity.ClientProfile) error
}

type ModeratorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ModeratorProfile) error
	FindByID(db *gorm.DB, id int) (*entity.ModeratorProfile, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ModeratorProfile, error)
	Update(db *gorm.DB, profile *entity.ModeratorProfile) error
}
