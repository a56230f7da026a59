package usecase

import (
	"context"

	"vetclinic-backoffice/internal/converter"
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SalaryUsecase interface {
	ListNurseDailySalaries(ctx context.Context, nurseID int) (*dto.NurseDailySalaryListResponse, error)
	ListAllDailySalaries(ctx context.Context) (*dto.NurseDailySalaryListResponse, error)
	GetNurseIncome(ctx context.Context, nurseID int) (*dto.NurseIncomeResponse, error)
	GetDoctorIncome(ctx context.Context, doctorID int) (*dto.DoctorIncomeResponse, error)
}

type salaryUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	dailySalaryRepo  repository.NurseDailySalaryRepository
	nurseIncomeRepo  repository.NurseIncomeRepository
	doctorIncomeRepo repository.DoctorIncomeRepository
	nurseRepo        repository.NurseProfileRepository
	doctorRepo       repository.DoctorProfileRepository
}

func NewSalaryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	dailySalaryRepo repository.NurseDailySalaryRepository,
	nurseIncomeRepo repository.NurseIncomeRepository,
	doctorIncomeRepo repository.DoctorIncomeRepository,
	nurseRepo repository.NurseProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
) SalaryUsecase {
	return &salaryUsecase{
		db:               db,
		log:              log,
		dailySalaryRepo:  dailySalaryRepo,
		nurseIncomeRepo:  nurseIncomeRepo,
		doctorIncomeRepo: doctorIncomeRepo,
		nurseRepo:        nurseRepo,
		doctorRepo:       doctorRepo,
	}
}

func (u *salaryUsecase) ListNurseDailySalaries(ctx context.Context, nurseID int) (*dto.NurseDailySalaryListResponse, error) {
	nurse, err := u.nurseRepo.FindByID(u.db.WithContext(ctx), nurseID)
	if err != nil {
		return nil, err
	}
	if nurse == nil {
		return nil, ErrNurseNotFound
	}

	salaries, err := u.dailySalaryRepo.FindByNurseID(u.db.WithContext(ctx), nurseID)
	if err != nil {
		return nil, err
	}
	return &dto.NurseDailySalaryListResponse{
		Salaries: converter.NurseDailySalariesToResponses(salaries),
		Total:    len(salaries),
	}, nil
}

func (u *salaryUsecase) ListAllDailySalaries(ctx context.Context) (*dto.NurseDailySalaryListResponse, error) {
	salaries, err := u.dailySalaryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list daily salaries: %+v", err)
		return nil, err
	}
	return &dto.NurseDailySalaryListResponse{
		Salaries: converter.NurseDailySalariesToResponses(salaries),
		Total:    len(salaries),
	}, nil
}

func (u *salaryUsecase) GetNurseIncome(ctx context.Context, nurseID int) (*dto.NurseIncomeResponse, error) {
	nurse, err := u.nurseRepo.FindByID(u.db.WithContext(ctx), nurseID)
	if err != nil {
		return nil, err
	}
	if nurse == nil {
		return nil, ErrNurseNotFound
	}

	income, err := u.nurseIncomeRepo.FindByNurseID(u.db.WithContext(ctx), nurseID)
	if err != nil {
		return nil, err
	}
	if income == nil {
		income = &entity.NurseIncome{NurseID: nurseID}
	}
	return converter.NurseIncomeToResponse(income), nil
}

func (u *salaryUsecase) GetDoctorIncome(ctx context.Context, doctorID int) (*dto.DoctorIncomeResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	income, err := u.doctorIncomeRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		return nil, err
	}
	if income == nil {
		income = &entity.DoctorIncome{DoctorID: doctorID}
	}
	return converter.DoctorIncomeToResponse(income), nil
}
