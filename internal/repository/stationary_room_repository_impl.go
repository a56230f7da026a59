package repository

import (
	"errors"
	"time"

	"vetclinic-backoffice/internal/domain/entity"
	domainRepo "vetclinic-backoffice/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type stationaryRoomRepository struct{}

func NewStationaryRoomRepository() domainRepo.StationaryRoomRepository {
	return &stationaryRoomRepository{}
}

func (r *stationaryRoomRepository) Create(db *gorm.DB, room *entity.StationaryRoom) error {
	return db.Create(room).Error
}

func (r *stationaryRoomRepository) FindByID(db *gorm.DB, id int) (*entity.StationaryRoom, error) {
	var room entity.StationaryRoom
	err := db.Preload("Pet").Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *stationaryRoomRepository) FindByIDForUpdate(db *gorm.DB, id int) (*entity.StationaryRoom, error) {
	var room entity.StationaryRoom
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *stationaryRoomRepository) FindByPetIDForUpdate(db *gorm.DB, petID int, excludeRoomID int) (*entity.StationaryRoom, error) {
	var room entity.StationaryRoom
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("pet_id = ? AND id <> ?", petID, excludeRoomID).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *stationaryRoomRepository) FindAll(db *gorm.DB, freeOnly bool) ([]entity.StationaryRoom, error) {
	var rooms []entity.StationaryRoom
	query := db.Preload("Pet").Order("room_number")
	if freeOnly {
		query = query.Where("is_occupied = ?", false)
	}
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *stationaryRoomRepository) FindDueForRelease(db *gorm.DB, now time.Time) ([]entity.StationaryRoom, error) {
	var rooms []entity.StationaryRoom
	err := db.
		Where("release_date IS NOT NULL AND release_date <= ? AND pet_id IS NOT NULL", now).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *stationaryRoomRepository) Save(db *gorm.DB, room *entity.StationaryRoom) error {
	return db.Save(room).Error
}
