package repository

import (
	"time"

	"vetclinic-backoffice/internal/domain/entity"

	"gorm.io/gorm"
)

type StationaryRoomRepository interface {
	Create(db *gorm.DB, room *entity.StationaryRoom) error
	FindByID(db *gorm.DB, id int) (*entity.StationaryRoom, error)
	// FindByIDForUpdate locks the room row; assign/release serialize on it so
	// two concurrent requests cannot double-bind the room.
	FindByIDForUpdate(db *gorm.DB, id int) (*entity.StationaryRoom, error)
	// FindByPetIDForUpdate returns the room currently bound to the pet,
	// excluding excludeRoomID, locked. Used to enforce one room per pet.
	FindByPetIDForUpdate(db *gorm.DB, petID int, excludeRoomID int) (*entity.StationaryRoom, error)
	FindAll(db *gorm.DB, freeOnly bool) ([]entity.StationaryRoom, error)
	// FindDueForRelease returns occupied rooms whose release date has passed.
	FindDueForRelease(db *gorm.DB, now time.Time) ([]entity.StationaryRoom, error)
	Save(db *gorm.DB, room *entity.StationaryRoom) error
}
