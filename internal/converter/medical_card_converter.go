package converter

import (
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
)

func MedicalCardToResponse(card *entity.MedicalCard, selections []entity.ServiceSelection) *dto.MedicalCardResponse {
	resp := &dto.MedicalCardResponse{
		ID:                card.ID,
		ClientID:          card.ClientID,
		PetID:             card.PetID,
		DoctorID:          card.DoctorID,
		NurseID:           card.NurseID,
		Status:            string(card.Status),
		StationaryRoomID:  card.StationaryRoomID,
		RoomAdmissionDate: card.RoomAdmissionDate,
		RoomReleaseDate:   card.RoomReleaseDate,
		Weight:            card.Weight,
		BloodPressure:     card.BloodPressure,
		MucousMembrane:    card.MucousMembrane,
		HeartRate:         card.HeartRate,
		RespiratoryRate:   card.RespiratoryRate,
		GeneralCondition:  string(card.GeneralCondition),
		ChestCondition:    card.ChestCondition,
		BodyTemperature:   card.BodyTemperature,
		Anamnesis:         card.Anamnesis,
		Diagnosis:         card.Diagnosis,
		Diet:              card.Diet,
		Notes:             card.Notes,
		TotalFee:          card.TotalFee,
		ClosedAt:          card.ClosedAt,
		CreatedAt:         card.CreatedAt,
		Medicines:         MedicinesToResponses(card.Medicines),
	}
	if card.Client.ID != 0 {
		resp.ClientName = card.Client.User.FullName()
	}
	if card.Pet.ID != 0 {
		resp.PetName = card.Pet.Name
	}
	if card.Doctor.ID != 0 {
		resp.DoctorName = card.Doctor.User.FullName()
	}
	if card.RevisitDate != nil {
		formatted := card.RevisitDate.Format(dateLayout)
		resp.RevisitDate = &formatted
	}

	resp.Services = make([]dto.ServiceSelectionResponse, 0, len(selections))
	for _, sel := range selections {
		resp.Services = append(resp.Services, dto.ServiceSelectionResponse{
			ServiceID:   sel.ServiceID,
			ServiceName: sel.Service.Name,
			Price:       sel.Price,
		})
	}
	return resp
}

func MedicalCardsToResponses(cards []entity.MedicalCard) []dto.MedicalCardResponse {
	responses := make([]dto.MedicalCardResponse, 0, len(cards))
	for i := range cards {
		responses = append(responses, *MedicalCardToResponse(&cards[i], nil))
	}
	return responses
}
