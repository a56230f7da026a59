package repository

import (
	"vetclinic-backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByPhoneNumber(db *gorm.DB, phoneNumber string) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
}
