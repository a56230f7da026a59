package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMedicalCardBeforeSaveStampsClosedAt(t *testing.T) {
	card := MedicalCard{Status: CardStatusPaid}

	assert.NoError(t, card.BeforeSave(nil))
	assert.NotNil(t, card.ClosedAt)
	assert.True(t, card.IsPaid())
}

func TestMedicalCardBeforeSaveKeepsExistingClosedAt(t *testing.T) {
	closed := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)
	card := MedicalCard{Status: CardStatusPaid, ClosedAt: &closed}

	assert.NoError(t, card.BeforeSave(nil))
	assert.Equal(t, closed, *card.ClosedAt)
}

func TestMedicalCardBeforeSaveClearsClosedAtOnReopen(t *testing.T) {
	closed := time.Now()
	card := MedicalCard{Status: CardStatusInProgress, ClosedAt: &closed}

	assert.NoError(t, card.BeforeSave(nil))
	assert.Nil(t, card.ClosedAt)
}
