package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStationaryRoomBeforeSaveBindsPet(t *testing.T) {
	petID := 7
	room := StationaryRoom{RoomNumber: "A1", PetID: &petID}

	assert.NoError(t, room.BeforeSave(nil))
	assert.True(t, room.IsOccupied)
	assert.NotNil(t, room.AdmissionDate, "admission is auto-stamped")
	assert.Nil(t, room.ReleaseDate)
}

func TestStationaryRoomBeforeSaveKeepsExplicitAdmission(t *testing.T) {
	petID := 7
	admission := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	room := StationaryRoom{RoomNumber: "A1", PetID: &petID, AdmissionDate: &admission}

	assert.NoError(t, room.BeforeSave(nil))
	assert.Equal(t, admission, *room.AdmissionDate)
}

func TestStationaryRoomBeforeSaveReleasesPet(t *testing.T) {
	admission := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	room := StationaryRoom{
		RoomNumber:    "A1",
		IsOccupied:    true,
		AdmissionDate: &admission,
	}

	assert.NoError(t, room.BeforeSave(nil))
	assert.False(t, room.IsOccupied)
	assert.NotNil(t, room.ReleaseDate, "release is auto-stamped")
}

func TestStationaryRoomBeforeSaveDropsNegativeStay(t *testing.T) {
	petID := 7
	admission := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	release := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	room := StationaryRoom{
		RoomNumber:    "A1",
		IsOccupied:    true,
		PetID:         &petID,
		AdmissionDate: &admission,
		ReleaseDate:   &release,
	}

	assert.NoError(t, room.BeforeSave(nil))
	assert.Nil(t, room.ReleaseDate, "release before admission is an artifact")
	assert.Equal(t, admission, *room.AdmissionDate)
}
