package service

import (
	"testing"

	"vetclinic-backoffice/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newBillingFixture() (*fakeCardRepo, *fakeSelectionRepo, *fakeServiceRepo, *fakeMedicineRepo, BillingService) {
	cardRepo := newFakeCardRepo()
	selectionRepo := newFakeSelectionRepo()
	serviceRepo := &fakeServiceRepo{services: map[int]entity.Service{
		1: {ID: 1, Name: "Vaccination", Price: dec("50.00")},
		2: {ID: 2, Name: "Surgery", Price: dec("60.00"), PriceUpTo: decPtr("100.00")},
	}}
	medicineRepo := &fakeMedicineRepo{medicines: map[int]entity.Medicine{
		10: {ID: 10, Name: "Antibiotic", Price: dec("20.00")},
	}}
	svc := NewBillingService(testLogger(), cardRepo, selectionRepo, serviceRepo, medicineRepo)
	return cardRepo, selectionRepo, serviceRepo, medicineRepo, svc
}

func TestApplySelectionsSumsPickedPrices(t *testing.T) {
	cardRepo, selectionRepo, _, _, svc := newBillingFixture()
	card := &entity.MedicalCard{ID: 5}
	cardRepo.cards[5] = card

	total, err := svc.ApplySelections(nil, card, []ServicePick{
		{ServiceID: 1},
		{ServiceID: 2, Price: decPtr("75.00")},
	}, []int{10})

	require.NoError(t, err)
	assert.True(t, dec("145.00").Equal(total), "50 + 75 + 20, got %s", total)
	assert.True(t, dec("145.00").Equal(cardRepo.totalFees[5]), "total fee persisted")

	require.Len(t, selectionRepo.selections[5], 2)
	assert.True(t, dec("50.00").Equal(selectionRepo.selections[5][0].Price), "nil pick price falls back to base price")
	assert.True(t, dec("75.00").Equal(selectionRepo.selections[5][1].Price))
	assert.Len(t, cardRepo.cardServices[5], 2)
	assert.Len(t, cardRepo.cardMedicines[5], 1)
}

func TestApplySelectionsRejectsPriceOutsideRange(t *testing.T) {
	cardRepo, selectionRepo, _, _, svc := newBillingFixture()
	card := &entity.MedicalCard{ID: 5}

	_, err := svc.ApplySelections(nil, card, []ServicePick{
		{ServiceID: 2, Price: decPtr("100.01")},
	}, nil)

	assert.ErrorIs(t, err, ErrPriceOutOfRange)
	assert.Empty(t, selectionRepo.selections[5], "nothing is written on rejection")
	assert.NotContains(t, cardRepo.totalFees, 5)
}

func TestApplySelectionsRejectsFixedPriceMismatch(t *testing.T) {
	_, selectionRepo, _, _, svc := newBillingFixture()
	card := &entity.MedicalCard{ID: 5}

	for _, price := range []string{"49.00", "50.01"} {
		_, err := svc.ApplySelections(nil, card, []ServicePick{
			{ServiceID: 1, Price: decPtr(price)},
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidPrice, "fixed-price service rejects %s", price)
	}
	assert.Empty(t, selectionRepo.selections[5])
}

func TestApplySelectionsUnknownService(t *testing.T) {
	_, _, _, _, svc := newBillingFixture()
	card := &entity.MedicalCard{ID: 5}

	_, err := svc.ApplySelections(nil, card, []ServicePick{{ServiceID: 99}}, nil)
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestApplySelectionsUnknownMedicine(t *testing.T) {
	_, _, _, _, svc := newBillingFixture()
	card := &entity.MedicalCard{ID: 5}

	_, err := svc.ApplySelections(nil, card, []ServicePick{{ServiceID: 1}}, []int{99})
	assert.ErrorIs(t, err, ErrUnknownMedicine)
}

func TestRecomputeTotalFallsBackToBasePrices(t *testing.T) {
	cardRepo, _, _, _, svc := newBillingFixture()
	cardRepo.cardServices[5] = []entity.Service{
		{ID: 1, Price: dec("50.00")},
		{ID: 2, Price: dec("60.00")},
	}
	cardRepo.cardMedicines[5] = []entity.Medicine{
		{ID: 10, Price: dec("20.00")},
	}

	total, err := svc.RecomputeTotal(nil, 5)

	require.NoError(t, err)
	assert.True(t, dec("130.00").Equal(total), "cards without priced line items sum base prices, got %s", total)
}
