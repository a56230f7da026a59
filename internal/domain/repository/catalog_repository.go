package repository

import (
	"vetclinic-backoffice/internal/domain/entity"

	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet) error
	FindByID(db *gorm.DB, id int) (*entity.Pet, error)
	FindByClientID(db *gorm.DB, clientID int) ([]entity.Pet, error)
	FindAll(db *gorm.DB) ([]entity.Pet, error)
	Update(db *gorm.DB, pet *entity.Pet) error
	Delete(db *gorm.DB, id int) error
}

type MedicineRepository interface {
	Create(db *gorm.DB, medicine *entity.Medicine) error
	FindByID(db *gorm.DB, id int) (*entity.Medicine, error)
	FindByIDs(db *gorm.DB, ids []int) ([]entity.Medicine, error)
	FindAll(db *gorm.DB) ([]entity.Medicine, error)
	Update(db *gorm.DB, medicine *entity.Medicine) error
	Delete(db *gorm.DB, id int) error
}

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id int) (*entity.Service, error)
	FindByIDs(db *gorm.DB, ids []int) ([]entity.Service, error)
	FindAll(db *gorm.DB) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id int) error
}
