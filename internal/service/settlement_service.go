package service

import (
	"errors"
	"time"

	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCardNotFound = errors.New("medical card not found")

type SettlementService interface {
	// Settle runs the side effects of a payment reaching the paid status:
	// backfill a zero amount from the card's total fee, close the card, and
	// add the amount to the day's revenue. Fires only on the pending→paid
	// transition, detected against the caller's snapshot of the previous
	// status, so re-saving a paid payment never double-counts.
	Settle(tx *gorm.DB, payment *entity.Payment, prevStatus entity.PaymentStatus) error
}

type settlementService struct {
	log            *logrus.Logger
	cardRepo       repository.MedicalCardRepository
	paymentRepo    repository.PaymentRepository
	paymentDayRepo repository.PaymentDayRepository
}

func NewSettlementService(
	log *logrus.Logger,
	cardRepo repository.MedicalCardRepository,
	paymentRepo repository.PaymentRepository,
	paymentDayRepo repository.PaymentDayRepository,
) SettlementService {
	return &settlementService{
		log:            log,
		cardRepo:       cardRepo,
		paymentRepo:    paymentRepo,
		paymentDayRepo: paymentDayRepo,
	}
}

func (s *settlementService) Settle(tx *gorm.DB, payment *entity.Payment, prevStatus entity.PaymentStatus) error {
	if !payment.IsPaid() || prevStatus == entity.PaymentStatusPaid {
		return nil
	}

	card, err := s.cardRepo.FindByID(tx, payment.MedicalCardID)
	if err != nil {
		return err
	}
	if card == nil {
		return ErrCardNotFound
	}

	if payment.Amount.IsZero() {
		payment.Amount = card.TotalFee
		if err := s.paymentRepo.Update(tx, payment); err != nil {
			return err
		}
	}

	if !card.IsPaid() {
		card.Status = entity.CardStatusPaid
		if err := s.cardRepo.Update(tx, card); err != nil {
			return err
		}
	}

	if !payment.Amount.IsZero() {
		if err := s.paymentDayRepo.Increment(tx, dateOf(time.Now()), payment.Amount); err != nil {
			return err
		}
	}

	s.log.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"card_id":    card.ID,
		"amount":     payment.Amount,
	}).Info("Payment settled")
	return nil
}
