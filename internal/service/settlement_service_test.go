package service

import (
	"testing"

	"vetclinic-backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settlementFixture struct {
	cardRepo       *fakeCardRepo
	paymentRepo    *fakePaymentRepo
	paymentDayRepo *fakePaymentDayRepo
	svc            SettlementService
}

func newSettlementFixture() *settlementFixture {
	f := &settlementFixture{
		cardRepo:       newFakeCardRepo(),
		paymentRepo:    newFakePaymentRepo(),
		paymentDayRepo: &fakePaymentDayRepo{},
	}
	f.svc = NewSettlementService(testLogger(), f.cardRepo, f.paymentRepo, f.paymentDayRepo)
	return f
}

func TestSettleNoOpWhilePending(t *testing.T) {
	f := newSettlementFixture()
	payment := &entity.Payment{ID: 1, MedicalCardID: 5, Status: entity.PaymentStatusPending}

	require.NoError(t, f.svc.Settle(nil, payment, entity.PaymentStatusPending))
	assert.Empty(t, f.paymentDayRepo.increments)
	assert.Empty(t, f.cardRepo.updated)
}

func TestSettleNoOpWhenAlreadyPaid(t *testing.T) {
	f := newSettlementFixture()
	payment := &entity.Payment{
		ID:            1,
		MedicalCardID: 5,
		Status:        entity.PaymentStatusPaid,
		Amount:        dec("150.00"),
	}

	require.NoError(t, f.svc.Settle(nil, payment, entity.PaymentStatusPaid))
	assert.Empty(t, f.paymentDayRepo.increments, "re-saving a paid payment never double-counts")
}

func TestSettleCardNotFound(t *testing.T) {
	f := newSettlementFixture()
	payment := &entity.Payment{ID: 1, MedicalCardID: 99, Status: entity.PaymentStatusPaid}

	err := f.svc.Settle(nil, payment, entity.PaymentStatusPending)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestSettleBackfillsAmountClosesCardAndAddsRevenue(t *testing.T) {
	f := newSettlementFixture()
	f.cardRepo.cards[5] = &entity.MedicalCard{
		ID:       5,
		Status:   entity.CardStatusInProgress,
		TotalFee: dec("150.00"),
	}
	payment := &entity.Payment{ID: 1, MedicalCardID: 5, Status: entity.PaymentStatusPaid}

	require.NoError(t, f.svc.Settle(nil, payment, entity.PaymentStatusPending))

	assert.True(t, dec("150.00").Equal(payment.Amount), "zero amount is backfilled from the card's total fee")
	require.Len(t, f.paymentRepo.updated, 1)
	assert.Equal(t, entity.CardStatusPaid, f.cardRepo.cards[5].Status)
	require.Len(t, f.paymentDayRepo.increments, 1)
	assert.True(t, dec("150.00").Equal(f.paymentDayRepo.increments[0].amount))
}

func TestSettleKeepsExplicitAmount(t *testing.T) {
	f := newSettlementFixture()
	f.cardRepo.cards[5] = &entity.MedicalCard{
		ID:       5,
		Status:   entity.CardStatusInProgress,
		TotalFee: dec("150.00"),
	}
	payment := &entity.Payment{
		ID:            1,
		MedicalCardID: 5,
		Status:        entity.PaymentStatusPaid,
		Amount:        dec("120.00"),
	}

	require.NoError(t, f.svc.Settle(nil, payment, entity.PaymentStatusPending))

	assert.True(t, dec("120.00").Equal(payment.Amount))
	assert.Empty(t, f.paymentRepo.updated, "a non-zero amount is not rewritten")
	require.Len(t, f.paymentDayRepo.increments, 1)
	assert.True(t, dec("120.00").Equal(f.paymentDayRepo.increments[0].amount))
}

func TestSettleSkipsRevenueForZeroFee(t *testing.T) {
	f := newSettlementFixture()
	f.cardRepo.cards[5] = &entity.MedicalCard{ID: 5, Status: entity.CardStatusInProgress}
	payment := &entity.Payment{ID: 1, MedicalCardID: 5, Status: entity.PaymentStatusPaid}

	require.NoError(t, f.svc.Settle(nil, payment, entity.PaymentStatusPending))

	assert.Equal(t, entity.CardStatusPaid, f.cardRepo.cards[5].Status, "card still closes")
	assert.Empty(t, f.paymentDayRepo.increments, "no revenue row for a zero amount")
}

func TestSettleLeavesAlreadyClosedCardAlone(t *testing.T) {
	f := newSettlementFixture()
	f.cardRepo.cards[5] = &entity.MedicalCard{
		ID:       5,
		Status:   entity.CardStatusPaid,
		TotalFee: dec("150.00"),
	}
	payment := &entity.Payment{ID: 1, MedicalCardID: 5, Status: entity.PaymentStatusPaid}

	require.NoError(t, f.svc.Settle(nil, payment, entity.PaymentStatusPending))

	assert.Empty(t, f.cardRepo.updated, "no card write when it is already closed")
	require.Len(t, f.paymentDayRepo.increments, 1)
}
