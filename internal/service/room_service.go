package service

import (
	"errors"
	"time"

	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound = errors.New("stationary room not found")
	ErrRoomOccupied = errors.New("stationary room is occupied by another pet")
)

type RoomService interface {
	// Assign binds a pet to a room under a row lock. If the pet currently
	// occupies another room it is moved, never duplicated. Explicit dates
	// win over auto-stamped ones.
	Assign(tx *gorm.DB, roomID int, petID int, admission, release *time.Time) (*entity.StationaryRoom, error)
	// Release frees a room. Releasing a free room is a no-op.
	Release(tx *gorm.DB, roomID int) (*entity.StationaryRoom, error)
	// ReleaseDue frees every occupied room whose release date has passed and
	// returns how many were freed.
	ReleaseDue(tx *gorm.DB, now time.Time) (int, error)
}

type roomService struct {
	log      *logrus.Logger
	roomRepo repository.StationaryRoomRepository
}

func NewRoomService(log *logrus.Logger, roomRepo repository.StationaryRoomRepository) RoomService {
	return &roomService{log: log, roomRepo: roomRepo}
}

func (s *roomService) Assign(tx *gorm.DB, roomID int, petID int, admission, release *time.Time) (*entity.StationaryRoom, error) {
	room, err := s.roomRepo.FindByIDForUpdate(tx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.PetID != nil && *room.PetID != petID {
		return nil, ErrRoomOccupied
	}

	// One room per pet: moving a pet frees its previous room first.
	previous, err := s.roomRepo.FindByPetIDForUpdate(tx, petID, roomID)
	if err != nil {
		return nil, err
	}
	if previous != nil {
		// The old stay ends on the caller-supplied release date when given,
		// otherwise it is stamped on save.
		if release != nil {
			previous.ReleaseDate = release
		}
		previous.PetID = nil
		if err := s.roomRepo.Save(tx, previous); err != nil {
			return nil, err
		}
		s.log.Infof("Moved pet %d out of room %s", petID, previous.RoomNumber)
	}

	if room.PetID == nil {
		// Fresh admission: stale dates from the previous stay must not leak
		// into this one.
		room.AdmissionDate = nil
		room.ReleaseDate = nil
	}
	room.PetID = &petID
	if admission != nil {
		room.AdmissionDate = admission
	}
	if release != nil {
		room.ReleaseDate = release
	}
	if err := s.roomRepo.Save(tx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) Release(tx *gorm.DB, roomID int) (*entity.StationaryRoom, error) {
	room, err := s.roomRepo.FindByIDForUpdate(tx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.PetID == nil {
		return room, nil
	}
	room.PetID = nil
	if err := s.roomRepo.Save(tx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) ReleaseDue(tx *gorm.DB, now time.Time) (int, error) {
	rooms, err := s.roomRepo.FindDueForRelease(tx, now)
	if err != nil {
		return 0, err
	}
	freed := 0
	for i := range rooms {
		rooms[i].PetID = nil
		if err := s.roomRepo.Save(tx, &rooms[i]); err != nil {
			return freed, err
		}
		freed++
	}
	return freed, nil
}
