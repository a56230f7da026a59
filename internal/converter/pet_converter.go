package converter

import (
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
)

func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	resp := &dto.PetResponse{
		ID:       pet.ID,
		ClientID: pet.ClientID,
		Name:     pet.Name,
		Breed:    pet.Breed,
		Age:      pet.Age,
		Gender:   string(pet.Gender),
		Notes:    pet.Notes,
	}
	if pet.Client.ID != 0 {
		resp.ClientName = pet.Client.User.FullName()
	}
	return resp
}

func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	responses := make([]dto.PetResponse, 0, len(pets))
	for i := range pets {
		responses = append(responses, *PetToResponse(&pets[i]))
	}
	return responses
}
