package usecase

import (
	"context"
	"testing"

	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/delivery/http/middleware"
	"vetclinic-backoffice/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	mock          sqlmock.Sqlmock
	paymentRepo   *fakePaymentRepo
	cardRepo      *fakeCardRepo
	moderatorRepo *fakeModeratorRepo
	settlement    *fakeSettlementService
	audit         *fakeAuditService
	uc            PaymentUsecase
	moderatorCtx  context.Context
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	db, mock := newTestDB(t)
	userID := uuid.New()
	f := &paymentFixture{
		mock:          mock,
		paymentRepo:   newFakePaymentRepo(),
		cardRepo:      newFakeCardRepo(),
		moderatorRepo: &fakeModeratorRepo{moderators: map[int]*entity.ModeratorProfile{}},
		settlement:    &fakeSettlementService{},
		audit:         &fakeAuditService{},
		moderatorCtx:  context.WithValue(context.Background(), middleware.UserIDKey, userID),
	}
	f.moderatorRepo.moderators[3] = &entity.ModeratorProfile{ID: 3, UserID: userID}
	f.uc = NewPaymentUsecase(
		db,
		testLogger(),
		f.paymentRepo,
		&fakePaymentDayRepo{},
		f.cardRepo,
		f.moderatorRepo,
		f.settlement,
		f.audit,
	)
	return f
}

func TestPaymentCreatePending(t *testing.T) {
	f := newPaymentFixture(t)
	f.cardRepo.cards[5] = &entity.MedicalCard{ID: 5}
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.uc.Create(f.moderatorCtx, &dto.CreatePaymentRequest{
		MedicalCardID: 5,
		Method:        "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.PaymentStatusPending), resp.Status)
	assert.Equal(t, 3, resp.ProcessedByID, "moderator resolves from the authenticated user")
	require.Len(t, f.settlement.calls, 1)
	assert.Equal(t, entity.PaymentStatusPending, f.settlement.calls[0].prevStatus)
	assert.Contains(t, f.audit.actions, "payment.create")
}

func TestPaymentCreateBornPaidSettles(t *testing.T) {
	f := newPaymentFixture(t)
	f.cardRepo.cards[5] = &entity.MedicalCard{ID: 5, TotalFee: dec("150.00")}
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.uc.Create(f.moderatorCtx, &dto.CreatePaymentRequest{
		MedicalCardID: 5,
		Method:        "card",
		Status:        ptr("paid"),
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.PaymentStatusPaid), resp.Status)
	require.Len(t, f.settlement.calls, 1)
	assert.Equal(t, entity.PaymentStatusPending, f.settlement.calls[0].prevStatus,
		"a payment born paid settles against the pending default")
}

func TestPaymentCreateRejectsSecondPaymentForCard(t *testing.T) {
	f := newPaymentFixture(t)
	f.cardRepo.cards[5] = &entity.MedicalCard{ID: 5}
	f.paymentRepo.payments[1] = &entity.Payment{ID: 1, MedicalCardID: 5}
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.Create(f.moderatorCtx, &dto.CreatePaymentRequest{
		MedicalCardID: 5,
		Method:        "cash",
	})

	assert.ErrorIs(t, err, ErrPaymentExists)
	assert.Empty(t, f.settlement.calls)
}

func TestPaymentCreateCardNotFound(t *testing.T) {
	f := newPaymentFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.Create(f.moderatorCtx, &dto.CreatePaymentRequest{
		MedicalCardID: 99,
		Method:        "cash",
	})
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestPaymentCreateRequiresModeratorProfile(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.Create(ctx, &dto.CreatePaymentRequest{
		MedicalCardID: 5,
		Method:        "cash",
	})
	assert.ErrorIs(t, err, ErrModeratorNotFound)
}

func TestPaymentUpdateSettlesOnTransition(t *testing.T) {
	f := newPaymentFixture(t)
	f.paymentRepo.payments[1] = &entity.Payment{
		ID:            1,
		MedicalCardID: 5,
		Status:        entity.PaymentStatusPending,
		Method:        entity.PaymentMethodCash,
	}
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.uc.Update(f.moderatorCtx, 1, &dto.UpdatePaymentRequest{Status: ptr("paid")})

	require.NoError(t, err)
	assert.Equal(t, string(entity.PaymentStatusPaid), resp.Status)
	require.Len(t, f.settlement.calls, 1)
	assert.Equal(t, entity.PaymentStatusPending, f.settlement.calls[0].prevStatus,
		"the snapshot is taken before the mutation")
}

func TestPaymentUpdatePaidStaysPaid(t *testing.T) {
	f := newPaymentFixture(t)
	f.paymentRepo.payments[1] = &entity.Payment{
		ID:            1,
		MedicalCardID: 5,
		Status:        entity.PaymentStatusPaid,
		Method:        entity.PaymentMethodCash,
		Amount:        dec("150.00"),
	}
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	_, err := f.uc.Update(f.moderatorCtx, 1, &dto.UpdatePaymentRequest{Status: ptr("paid")})

	require.NoError(t, err)
	require.Len(t, f.settlement.calls, 1)
	assert.Equal(t, entity.PaymentStatusPaid, f.settlement.calls[0].prevStatus,
		"the settlement sees the already paid snapshot and stays idle")
}

func TestPaymentUpdateNotFound(t *testing.T) {
	f := newPaymentFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.Update(f.moderatorCtx, 99, &dto.UpdatePaymentRequest{Status: ptr("paid")})
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
