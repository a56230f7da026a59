package converter

import (
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
)

func RoomToResponse(room *entity.StationaryRoom) *dto.RoomResponse {
	resp := &dto.RoomResponse{
		ID:            room.ID,
		RoomNumber:    room.RoomNumber,
		IsOccupied:    room.IsOccupied,
		PetID:         room.PetID,
		AdmissionDate: room.AdmissionDate,
		ReleaseDate:   room.ReleaseDate,
	}
	if room.Pet != nil {
		resp.PetName = room.Pet.Name
	}
	return resp
}

func RoomsToResponses(rooms []entity.StationaryRoom) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, *RoomToResponse(&rooms[i]))
	}
	return responses
}
