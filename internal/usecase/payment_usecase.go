package usecase

import (
	"context"
	"errors"

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
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentExists   = errors.New("medical card already has a payment")
)

type PaymentUsecase interface {
	Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetByID(ctx context.Context, id int) (*dto.PaymentResponse, error)
	List(ctx context.Context) (*dto.PaymentListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	ListPaymentDays(ctx context.Context) (*dto.PaymentDayListResponse, error)
}

type paymentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	paymentRepo       repository.PaymentRepository
	paymentDayRepo    repository.PaymentDayRepository
	cardRepo          repository.MedicalCardRepository
	moderatorRepo     repository.ModeratorProfileRepository
	settlementService service.SettlementService
	auditService      service.AuditService
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	paymentDayRepo repository.PaymentDayRepository,
	cardRepo repository.MedicalCardRepository,
	moderatorRepo repository.ModeratorProfileRepository,
	settlementService service.SettlementService,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		db:                db,
		log:               log,
		paymentRepo:       paymentRepo,
		paymentDayRepo:    paymentDayRepo,
		cardRepo:          cardRepo,
		moderatorRepo:     moderatorRepo,
		settlementService: settlementService,
		auditService:      auditService,
	}
}

func (u *paymentUsecase) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	moderator, err := u.moderatorRepo.FindByUserID(tx, userID)
	if err != nil {
		return nil, err
	}
	if moderator == nil {
		return nil, ErrModeratorNotFound
	}

	card, err := u.cardRepo.FindByID(tx, req.MedicalCardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	existing, err := u.paymentRepo.FindByCardID(tx, req.MedicalCardID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPaymentExists
	}

	payment := &entity.Payment{
		MedicalCardID: req.MedicalCardID,
		Status:        entity.PaymentStatusPending,
		Method:        entity.PaymentMethod(req.Method),
		ProcessedByID: moderator.ID,
	}
	if req.Status != nil {
		payment.Status = entity.PaymentStatus(*req.Status)
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}

	if err := u.paymentRepo.Create(tx, payment); err != nil {
		if isDuplicateKeyError(err, "medical_card_id") {
			return nil, ErrPaymentExists
		}
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	// A payment born paid settles immediately; its previous status is the
	// pending default.
	if err := u.settlementService.Settle(tx, payment, entity.PaymentStatusPending); err != nil {
		return nil, err
	}

	_ = u.auditService.Record(tx, &userID, "payment.create", entity.JSON{
		"payment_id": payment.ID,
		"card_id":    payment.MedicalCardID,
		"status":     string(payment.Status),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetByID(ctx context.Context, id int) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) List(ctx context.Context) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}
	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

func (u *paymentUsecase) Update(ctx context.Context, id int, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payment, err := u.paymentRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	// Snapshot before any mutation; the settlement fires on the transition,
	// not on the final state.
	prevStatus := payment.Status

	if req.Method != nil {
		payment.Method = entity.PaymentMethod(*req.Method)
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Status != nil {
		payment.Status = entity.PaymentStatus(*req.Status)
	}

	if err := u.paymentRepo.Update(tx, payment); err != nil {
		u.log.Warnf("Failed to update payment %d: %+v", id, err)
		return nil, err
	}

	if err := u.settlementService.Settle(tx, payment, prevStatus); err != nil {
		return nil, err
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		_ = u.auditService.Record(tx, &userID, "payment.update", entity.JSON{
			"payment_id": payment.ID,
			"status":     string(payment.Status),
		})
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) ListPaymentDays(ctx context.Context) (*dto.PaymentDayListResponse, error) {
	days, err := u.paymentDayRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list payment days: %+v", err)
		return nil, err
	}
	return &dto.PaymentDayListResponse{
		Days:  converter.PaymentDaysToResponses(days),
		Total: len(days),
	}, nil
}
