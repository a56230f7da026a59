package usecase

import (
	"context"
	"errors"
	"time"

	"vetclinic-backoffice/internal/converter"
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound    = errors.New("doctor profile not found")
	ErrNurseNotFound     = errors.New("nurse profile not found")
	ErrClientNotFound    = errors.New("client profile not found")
	ErrModeratorNotFound = errors.New("moderator profile not found")
)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

type StaffUsecase interface {
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	RegisterNurse(ctx context.Context, req *dto.RegisterNurseRequest) (*dto.NurseResponse, error)
	RegisterModerator(ctx context.Context, req *dto.RegisterModeratorRequest) (*dto.ModeratorResponse, error)
	RegisterClient(ctx context.Context, req *dto.RegisterClientRequest) (*dto.ClientResponse, error)
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	ListNurses(ctx context.Context) (*dto.NurseListResponse, error)
	ListClients(ctx context.Context) (*dto.ClientListResponse, error)
}

type staffUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	doctorRepo       repository.DoctorProfileRepository
	nurseRepo        repository.NurseProfileRepository
	moderatorRepo    repository.ModeratorProfileRepository
	clientRepo       repository.ClientProfileRepository
	doctorIncomeRepo repository.DoctorIncomeRepository
}

func NewStaffUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	nurseRepo repository.NurseProfileRepository,
	moderatorRepo repository.ModeratorProfileRepository,
	clientRepo repository.ClientProfileRepository,
	doctorIncomeRepo repository.DoctorIncomeRepository,
) StaffUsecase {
	return &staffUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		doctorRepo:       doctorRepo,
		nurseRepo:        nurseRepo,
		moderatorRepo:    moderatorRepo,
		clientRepo:       clientRepo,
		doctorIncomeRepo: doctorIncomeRepo,
	}
}

func (u *staffUsecase) createUser(tx *gorm.DB, phoneNumber, password, firstName, lastName string, roleID int, telegramID *string) (*entity.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		RoleID:      roleID,
		PhoneNumber: phoneNumber,
		Password:    string(hashedPassword),
		FirstName:   firstName,
		LastName:    lastName,
		TelegramID:  telegramID,
	}
	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "phone_number") {
			return nil, ErrPhoneAlreadyExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}
	return user, nil
}

func (u *staffUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	workStart, err := parseDate(req.WorkStartDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.createUser(tx, req.PhoneNumber, req.Password, req.FirstName, req.LastName, entity.RoleIDDoctor, nil)
	if err != nil {
		return nil, err
	}

	profile := &entity.DoctorProfile{
		UserID:         user.ID,
		Specialization: req.Specialization,
		WorkStartDate:  workStart,
		SalaryPerCase:  req.SalaryPerCase,
	}
	if err := u.doctorRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.DoctorToResponse(profile, decimal.Zero), nil
}

func (u *staffUsecase) RegisterNurse(ctx context.Context, req *dto.RegisterNurseRequest) (*dto.NurseResponse, error) {
	workStart, err := parseDate(req.WorkStartDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.createUser(tx, req.PhoneNumber, req.Password, req.FirstName, req.LastName, entity.RoleIDNurse, nil)
	if err != nil {
		return nil, err
	}

	profile := &entity.NurseProfile{
		UserID:          user.ID,
		WorkStartDate:   workStart,
		ExperienceLevel: req.ExperienceLevel,
	}
	if req.RatePerTask != nil {
		profile.RatePerTask = *req.RatePerTask
	} else {
		profile.RatePerTask = decimal.NewFromInt(10000)
	}
	if err := u.nurseRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create nurse profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.NurseToResponse(profile), nil
}

func (u *staffUsecase) RegisterModerator(ctx context.Context, req *dto.RegisterModeratorRequest) (*dto.ModeratorResponse, error) {
	workStart, err := parseDate(req.WorkStartDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.createUser(tx, req.PhoneNumber, req.Password, req.FirstName, req.LastName, entity.RoleIDModerator, nil)
	if err != nil {
		return nil, err
	}

	profile := &entity.ModeratorProfile{
		UserID:        user.ID,
		WorkStartDate: workStart,
		Salary:        req.Salary,
	}
	if err := u.moderatorRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create moderator profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.ModeratorToResponse(profile), nil
}

func (u *staffUsecase) RegisterClient(ctx context.Context, req *dto.RegisterClientRequest) (*dto.ClientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.createUser(tx, req.PhoneNumber, req.Password, req.FirstName, req.LastName, entity.RoleIDClient, req.TelegramID)
	if err != nil {
		return nil, err
	}

	profile := &entity.ClientProfile{
		UserID:           user.ID,
		ExtraPhoneNumber: req.ExtraPhoneNumber,
		Address:          req.Address,
		Language:         req.Language,
	}
	if err := u.clientRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create client profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.ClientToResponse(profile), nil
}

func (u *staffUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		monthly := decimal.Zero
		income, err := u.doctorIncomeRepo.FindByDoctorID(u.db.WithContext(ctx), doctors[i].ID)
		if err != nil {
			return nil, err
		}
		if income != nil {
			monthly = income.MonthlyTotal
		}
		responses = append(responses, *converter.DoctorToResponse(&doctors[i], monthly))
	}
	return &dto.DoctorListResponse{Doctors: responses, Total: len(responses)}, nil
}

func (u *staffUsecase) ListNurses(ctx context.Context) (*dto.NurseListResponse, error) {
	nurses, err := u.nurseRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list nurses: %+v", err)
		return nil, err
	}
	return &dto.NurseListResponse{
		Nurses: converter.NursesToResponses(nurses),
		Total:  len(nurses),
	}, nil
}

func (u *staffUsecase) ListClients(ctx context.Context) (*dto.ClientListResponse, error) {
	clients, err := u.clientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list clients: %+v", err)
		return nil, err
	}
	return &dto.ClientListResponse{
		Clients: converter.ClientsToResponses(clients),
		Total:   len(clients),
	}, nil
}
