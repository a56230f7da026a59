package usecase

import (
	"context"
	"errors"
	"time"

	"vetclinic-backoffice/internal/converter"
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/delivery/http/middleware"
	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"
	"vetclinic-backoffice/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound          = errors.New("medical card not found")
	ErrPetNotOwned           = errors.New("pet does not belong to the client")
	ErrRevisitInPast         = errors.New("revisit date cannot be in the past")
	ErrAdmissionDateRequired = errors.New("room admission date is required when assigning a room")
	ErrInvalidDateRange      = errors.New("end date cannot be before start date")
)

type MedicalCardUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicalCardRequest) (*dto.MedicalCardResponse, error)
	GetByID(ctx context.Context, id int) (*dto.MedicalCardResponse, error)
	List(ctx context.Context) (*dto.MedicalCardListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateMedicalCardRequest) (*dto.MedicalCardResponse, error)
	// SelectServices replaces the card's priced service lines and medicine
	// set in full, then recomputes the total fee, all in one transaction.
	SelectServices(ctx context.Context, id int, req *dto.SelectServicesRequest) (*dto.MedicalCardResponse, error)
}

type medicalCardUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	cardRepo       repository.MedicalCardRepository
	selectionRepo  repository.ServiceSelectionRepository
	clientRepo     repository.ClientProfileRepository
	petRepo        repository.PetRepository
	doctorRepo     repository.DoctorProfileRepository
	nurseRepo      repository.NurseProfileRepository
	billingService service.BillingService
	roomService    service.RoomService
	auditService   service.AuditService
}

func NewMedicalCardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cardRepo repository.MedicalCardRepository,
	selectionRepo repository.ServiceSelectionRepository,
	clientRepo repository.ClientProfileRepository,
	petRepo repository.PetRepository,
	doctorRepo repository.DoctorProfileRepository,
	nurseRepo repository.NurseProfileRepository,
	billingService service.BillingService,
	roomService service.RoomService,
	auditService service.AuditService,
) MedicalCardUsecase {
	return &medicalCardUsecase{
		db:             db,
		log:            log,
		cardRepo:       cardRepo,
		selectionRepo:  selectionRepo,
		clientRepo:     clientRepo,
		petRepo:        petRepo,
		doctorRepo:     doctorRepo,
		nurseRepo:      nurseRepo,
		billingService: billingService,
		roomService:    roomService,
		auditService:   auditService,
	}
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (u *medicalCardUsecase) validateParticipants(db *gorm.DB, clientID, petID, doctorID int, nurseID *int) error {
	client, err := u.clientRepo.FindByID(db, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}

	pet, err := u.petRepo.FindByID(db, petID)
	if err != nil {
		return err
	}
	if pet == nil {
		return ErrPetNotFound
	}
	if pet.ClientID != clientID {
		return ErrPetNotOwned
	}

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if nurseID != nil {
		nurse, err := u.nurseRepo.FindByID(db, *nurseID)
		if err != nil {
			return err
		}
		if nurse == nil {
			return ErrNurseNotFound
		}
	}
	return nil
}

func validateRevisitDate(revisit *time.Time) error {
	if revisit == nil {
		return nil
	}
	today := time.Now().Truncate(24 * time.Hour)
	if revisit.Before(today) {
		return ErrRevisitInPast
	}
	return nil
}

func (u *medicalCardUsecase) Create(ctx context.Context, req *dto.CreateMedicalCardRequest) (*dto.MedicalCardResponse, error) {
	admission, err := parseOptionalDate(req.RoomAdmissionDate)
	if err != nil {
		return nil, err
	}
	release, err := parseOptionalDate(req.RoomReleaseDate)
	if err != nil {
		return nil, err
	}
	revisit, err := parseOptionalDate(req.RevisitDate)
	if err != nil {
		return nil, err
	}
	if err := validateRevisitDate(revisit); err != nil {
		return nil, err
	}
	if req.StationaryRoomID != nil && admission == nil {
		return nil, ErrAdmissionDateRequired
	}
	if admission != nil && release != nil && release.Before(*admission) {
		return nil, ErrInvalidDateRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.validateParticipants(tx, req.ClientID, req.PetID, req.DoctorID, req.NurseID); err != nil {
		return nil, err
	}

	card := &entity.MedicalCard{
		ClientID:          req.ClientID,
		PetID:             req.PetID,
		DoctorID:          req.DoctorID,
		NurseID:           req.NurseID,
		Status:            entity.CardStatusPending,
		StationaryRoomID:  req.StationaryRoomID,
		RoomAdmissionDate: admission,
		RoomReleaseDate:   release,
		Weight:            req.Weight,
		BloodPressure:     req.BloodPressure,
		MucousMembrane:    req.MucousMembrane,
		HeartRate:         req.HeartRate,
		RespiratoryRate:   req.RespiratoryRate,
		GeneralCondition:  entity.ConditionHealthy,
		ChestCondition:    req.ChestCondition,
		BodyTemperature:   req.BodyTemperature,
		Anamnesis:         req.Anamnesis,
		Diagnosis:         req.Diagnosis,
		Diet:              req.Diet,
		Notes:             req.Notes,
		RevisitDate:       revisit,
	}
	if req.GeneralCondition != nil {
		card.GeneralCondition = entity.GeneralCondition(*req.GeneralCondition)
	}

	if err := u.cardRepo.Create(tx, card); err != nil {
		u.log.Warnf("Failed to create medical card: %+v", err)
		return nil, err
	}

	if req.StationaryRoomID != nil {
		if _, err := u.roomService.Assign(tx, *req.StationaryRoomID, req.PetID, admission, release); err != nil {
			return nil, err
		}
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		_ = u.auditService.Record(tx, &userID, "medical_card.create", entity.JSON{
			"card_id": card.ID,
			"pet_id":  card.PetID,
		})
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetByID(ctx, card.ID)
}

func (u *medicalCardUsecase) GetByID(ctx context.Context, id int) (*dto.MedicalCardResponse, error) {
	card, err := u.cardRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	selections, err := u.selectionRepo.FindByCardID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return converter.MedicalCardToResponse(card, selections), nil
}

func (u *medicalCardUsecase) List(ctx context.Context) (*dto.MedicalCardListResponse, error) {
	cards, err := u.cardRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medical cards: %+v", err)
		return nil, err
	}
	return &dto.MedicalCardListResponse{
		Cards: converter.MedicalCardsToResponses(cards),
		Total: len(cards),
	}, nil
}

func (u *medicalCardUsecase) Update(ctx context.Context, id int, req *dto.UpdateMedicalCardRequest) (*dto.MedicalCardResponse, error) {
	admission, err := parseOptionalDate(req.RoomAdmissionDate)
	if err != nil {
		return nil, err
	}
	release, err := parseOptionalDate(req.RoomReleaseDate)
	if err != nil {
		return nil, err
	}
	revisit, err := parseOptionalDate(req.RevisitDate)
	if err != nil {
		return nil, err
	}
	if err := validateRevisitDate(revisit); err != nil {
		return nil, err
	}
	if admission != nil && release != nil && release.Before(*admission) {
		return nil, ErrInvalidDateRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	card, err := u.cardRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	if req.NurseID != nil {
		nurse, err := u.nurseRepo.FindByID(tx, *req.NurseID)
		if err != nil {
			return nil, err
		}
		if nurse == nil {
			return nil, ErrNurseNotFound
		}
		card.NurseID = req.NurseID
	}
	if req.Status != nil {
		card.Status = entity.MedicalCardStatus(*req.Status)
	}
	if req.Weight != nil {
		card.Weight = req.Weight
	}
	if req.BloodPressure != nil {
		card.BloodPressure = req.BloodPressure
	}
	if req.MucousMembrane != nil {
		card.MucousMembrane = req.MucousMembrane
	}
	if req.HeartRate != nil {
		card.HeartRate = req.HeartRate
	}
	if req.RespiratoryRate != nil {
		card.RespiratoryRate = req.RespiratoryRate
	}
	if req.GeneralCondition != nil {
		card.GeneralCondition = entity.GeneralCondition(*req.GeneralCondition)
	}
	if req.ChestCondition != nil {
		card.ChestCondition = req.ChestCondition
	}
	if req.BodyTemperature != nil {
		card.BodyTemperature = req.BodyTemperature
	}
	if req.Anamnesis != nil {
		card.Anamnesis = req.Anamnesis
	}
	if req.Diagnosis != nil {
		card.Diagnosis = *req.Diagnosis
	}
	if req.Diet != nil {
		card.Diet = req.Diet
	}
	if req.Notes != nil {
		card.Notes = req.Notes
	}
	if revisit != nil {
		card.RevisitDate = revisit
	}
	if admission != nil {
		card.RoomAdmissionDate = admission
	}
	if release != nil {
		card.RoomReleaseDate = release
	}

	// Room move: the allocator frees the previous room itself, carrying the
	// release date onto it, so the old room is never left double-booked.
	if req.StationaryRoomID != nil && (card.StationaryRoomID == nil || *card.StationaryRoomID != *req.StationaryRoomID) {
		if card.RoomAdmissionDate == nil {
			return nil, ErrAdmissionDateRequired
		}
		if _, err := u.roomService.Assign(tx, *req.StationaryRoomID, card.PetID, card.RoomAdmissionDate, card.RoomReleaseDate); err != nil {
			return nil, err
		}
		card.StationaryRoomID = req.StationaryRoomID
	}

	if err := u.cardRepo.Update(tx, card); err != nil {
		u.log.Warnf("Failed to update medical card %d: %+v", id, err)
		return nil, err
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		_ = u.auditService.Record(tx, &userID, "medical_card.update", entity.JSON{
			"card_id": card.ID,
			"status":  string(card.Status),
		})
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return u.GetByID(ctx, id)
}

func (u *medicalCardUsecase) SelectServices(ctx context.Context, id int, req *dto.SelectServicesRequest) (*dto.MedicalCardResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	card, err := u.cardRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	picks := make([]service.ServicePick, 0, len(req.Services))
	for _, p := range req.Services {
		picks = append(picks, service.ServicePick{ServiceID: p.ServiceID, Price: p.Price})
	}

	total, err := u.billingService.ApplySelections(tx, card, picks, req.Medicines)
	if err != nil {
		return nil, err
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		_ = u.auditService.Record(tx, &userID, "medical_card.select_services", entity.JSON{
			"card_id":   card.ID,
			"total_fee": total.String(),
		})
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return u.GetByID(ctx, id)
}
