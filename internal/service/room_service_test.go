package service

import (
	"testing"
	"time"

	"vetclinic-backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRoomNotFound(t *testing.T) {
	svc := NewRoomService(testLogger(), newFakeRoomRepo())

	_, err := svc.Assign(nil, 1, 7, nil, nil)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestAssignOccupiedByAnotherPet(t *testing.T) {
	other := 3
	repo := newFakeRoomRepo(&entity.StationaryRoom{ID: 1, RoomNumber: "A1", PetID: &other})
	svc := NewRoomService(testLogger(), repo)

	_, err := svc.Assign(nil, 1, 7, nil, nil)
	assert.ErrorIs(t, err, ErrRoomOccupied)
	assert.Empty(t, repo.saved)
}

func TestAssignMovesPetOutOfPreviousRoom(t *testing.T) {
	petID := 7
	repo := newFakeRoomRepo(
		&entity.StationaryRoom{ID: 1, RoomNumber: "A1", PetID: &petID},
		&entity.StationaryRoom{ID: 2, RoomNumber: "A2"},
	)
	svc := NewRoomService(testLogger(), repo)

	room, err := svc.Assign(nil, 2, petID, nil, nil)

	require.NoError(t, err)
	require.NotNil(t, room.PetID)
	assert.Equal(t, petID, *room.PetID)
	assert.Nil(t, repo.rooms[1].PetID, "previous room is freed, not duplicated")
}

func TestAssignMoveCarriesReleaseDateToPreviousRoom(t *testing.T) {
	petID := 7
	repo := newFakeRoomRepo(
		&entity.StationaryRoom{ID: 1, RoomNumber: "A1", PetID: &petID},
		&entity.StationaryRoom{ID: 2, RoomNumber: "A2"},
	)
	svc := NewRoomService(testLogger(), repo)
	release := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.Assign(nil, 2, petID, nil, &release)

	require.NoError(t, err)
	require.NotNil(t, repo.rooms[1].ReleaseDate, "the old stay ends on the caller-supplied date")
	assert.Equal(t, release, *repo.rooms[1].ReleaseDate)
	assert.Nil(t, repo.rooms[1].PetID)
}

func TestAssignClearsStaleDatesOnFreshAdmission(t *testing.T) {
	oldAdmission := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	oldRelease := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	repo := newFakeRoomRepo(&entity.StationaryRoom{
		ID:            1,
		RoomNumber:    "A1",
		AdmissionDate: &oldAdmission,
		ReleaseDate:   &oldRelease,
	})
	svc := NewRoomService(testLogger(), repo)

	room, err := svc.Assign(nil, 1, 7, nil, nil)

	require.NoError(t, err)
	assert.Nil(t, room.AdmissionDate, "dates from the previous stay do not leak")
	assert.Nil(t, room.ReleaseDate)
}

func TestAssignExplicitDatesWin(t *testing.T) {
	repo := newFakeRoomRepo(&entity.StationaryRoom{ID: 1, RoomNumber: "A1"})
	svc := NewRoomService(testLogger(), repo)
	admission := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	release := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	room, err := svc.Assign(nil, 1, 7, &admission, &release)

	require.NoError(t, err)
	assert.Equal(t, admission, *room.AdmissionDate)
	assert.Equal(t, release, *room.ReleaseDate)
}

func TestAssignSamePetIsReentrant(t *testing.T) {
	petID := 7
	admission := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeRoomRepo(&entity.StationaryRoom{
		ID: 1, RoomNumber: "A1", PetID: &petID, AdmissionDate: &admission,
	})
	svc := NewRoomService(testLogger(), repo)
	release := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	room, err := svc.Assign(nil, 1, petID, nil, &release)

	require.NoError(t, err)
	assert.Equal(t, admission, *room.AdmissionDate, "existing stay keeps its admission date")
	assert.Equal(t, release, *room.ReleaseDate)
}

func TestReleaseFreeRoomIsNoOp(t *testing.T) {
	repo := newFakeRoomRepo(&entity.StationaryRoom{ID: 1, RoomNumber: "A1"})
	svc := NewRoomService(testLogger(), repo)

	room, err := svc.Release(nil, 1)

	require.NoError(t, err)
	assert.Nil(t, room.PetID)
	assert.Empty(t, repo.saved, "no write for an already free room")
}

func TestReleaseFreesOccupiedRoom(t *testing.T) {
	petID := 7
	repo := newFakeRoomRepo(&entity.StationaryRoom{ID: 1, RoomNumber: "A1", PetID: &petID})
	svc := NewRoomService(testLogger(), repo)

	room, err := svc.Release(nil, 1)

	require.NoError(t, err)
	assert.Nil(t, room.PetID)
	assert.Len(t, repo.saved, 1)
}

func TestReleaseDueFreesOnlyExpiredStays(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)
	p1, p2, p3 := 1, 2, 3
	repo := newFakeRoomRepo(
		&entity.StationaryRoom{ID: 1, RoomNumber: "A1", PetID: &p1, ReleaseDate: &past},
		&entity.StationaryRoom{ID: 2, RoomNumber: "A2", PetID: &p2, ReleaseDate: &future},
		&entity.StationaryRoom{ID: 3, RoomNumber: "A3", PetID: &p3, ReleaseDate: &past},
	)
	svc := NewRoomService(testLogger(), repo)

	freed, err := svc.ReleaseDue(nil, now)

	require.NoError(t, err)
	assert.Equal(t, 2, freed)
	assert.NotNil(t, repo.rooms[2].PetID, "future stay is untouched")
}
