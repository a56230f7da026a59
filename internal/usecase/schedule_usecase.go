package usecase

import (
	"context"
	"errors"

	"vetclinic-backoffice/internal/converter"
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/delivery/http/middleware"
	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrScheduleNotFound = errors.New("schedule not found")

type ScheduleUsecase interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ScheduleResponse, error)
	List(ctx context.Context) (*dto.ScheduleListResponse, error)
	ListByCard(ctx context.Context, cardID int) (*dto.ScheduleListResponse, error)
	Delete(ctx context.Context, id int) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	cardRepo     repository.MedicalCardRepository
	doctorRepo   repository.DoctorProfileRepository
	nurseRepo    repository.NurseProfileRepository
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	cardRepo repository.MedicalCardRepository,
	doctorRepo repository.DoctorProfileRepository,
	nurseRepo repository.NurseProfileRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		cardRepo:     cardRepo,
		doctorRepo:   doctorRepo,
		nurseRepo:    nurseRepo,
	}
}

func (u *scheduleUsecase) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	card, err := u.cardRepo.FindByID(u.db.WithContext(ctx), req.MedicalCardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	nurse, err := u.nurseRepo.FindByID(u.db.WithContext(ctx), req.AssignedNurseID)
	if err != nil {
		return nil, err
	}
	if nurse == nil {
		return nil, ErrNurseNotFound
	}

	schedule := &entity.Schedule{
		MedicalCardID:   req.MedicalCardID,
		CreatedByID:     doctor.ID,
		AssignedNurseID: req.AssignedNurseID,
		StartDate:       startDate,
		EndDate:         endDate,
		Notes:           req.Notes,
	}
	if err := u.scheduleRepo.Create(u.db.WithContext(ctx), schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	schedule.CreatedBy = *doctor
	schedule.AssignedNurse = *nurse
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetByID(ctx context.Context, id int) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) List(ctx context.Context) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list schedules: %+v", err)
		return nil, err
	}
	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *scheduleUsecase) ListByCard(ctx context.Context, cardID int) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindByCardID(u.db.WithContext(ctx), cardID)
	if err != nil {
		return nil, err
	}
	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *scheduleUsecase) Delete(ctx context.Context, id int) error {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}
	return u.scheduleRepo.Delete(u.db.WithContext(ctx), id)
}
