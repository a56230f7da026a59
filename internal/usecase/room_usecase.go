package usecase

import (
	"context"

	"vetclinic-backoffice/internal/converter"
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/delivery/http/middleware"
	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"
	"vetclinic-backoffice/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RoomUsecase interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	List(ctx context.Context, freeOnly bool) (*dto.RoomListResponse, error)
	Assign(ctx context.Context, roomID int, req *dto.AssignRoomRequest) (*dto.RoomResponse, error)
	Release(ctx context.Context, roomID int) (*dto.RoomResponse, error)
}

type roomUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	roomRepo     repository.StationaryRoomRepository
	petRepo      repository.PetRepository
	roomService  service.RoomService
	auditService service.AuditService
}

func NewRoomUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.StationaryRoomRepository,
	petRepo repository.PetRepository,
	roomService service.RoomService,
	auditService service.AuditService,
) RoomUsecase {
	return &roomUsecase{
		db:           db,
		log:          log,
		roomRepo:     roomRepo,
		petRepo:      petRepo,
		roomService:  roomService,
		auditService: auditService,
	}
}

func (u *roomUsecase) Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	room := &entity.StationaryRoom{RoomNumber: req.RoomNumber}
	if err := u.roomRepo.Create(u.db.WithContext(ctx), room); err != nil {
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}
	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) List(ctx context.Context, freeOnly bool) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.FindAll(u.db.WithContext(ctx), freeOnly)
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}
	return &dto.RoomListResponse{
		Rooms: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}, nil
}

func (u *roomUsecase) Assign(ctx context.Context, roomID int, req *dto.AssignRoomRequest) (*dto.RoomResponse, error) {
	admission, err := parseOptionalDate(req.AdmissionDate)
	if err != nil {
		return nil, err
	}
	release, err := parseOptionalDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}
	if admission != nil && release != nil && release.Before(*admission) {
		return nil, ErrInvalidDateRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pet, err := u.petRepo.FindByID(tx, req.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	room, err := u.roomService.Assign(tx, roomID, req.PetID, admission, release)
	if err != nil {
		return nil, err
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		_ = u.auditService.Record(tx, &userID, "room.assign", entity.JSON{
			"room_id": room.ID,
			"pet_id":  req.PetID,
		})
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) Release(ctx context.Context, roomID int) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.roomService.Release(tx, roomID)
	if err != nil {
		return nil, err
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		_ = u.auditService.Record(tx, &userID, "room.release", entity.JSON{
			"room_id": room.ID,
		})
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.RoomToResponse(room), nil
}
