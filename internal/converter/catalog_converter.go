package converter

import (
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
)

func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Price:       service.Price,
		PriceUpTo:   service.PriceUpTo,
		Description: service.Description,
	}
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, *ServiceToResponse(&services[i]))
	}
	return responses
}

func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	return &dto.MedicineResponse{
		ID:            medicine.ID,
		Name:          medicine.Name,
		Quantity:      medicine.Quantity,
		OriginalPrice: medicine.OriginalPrice,
		Price:         medicine.Price,
		ExpireDate:    medicine.ExpireDate.Format(dateLayout),
		Description:   medicine.Description,
	}
}

func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, 0, len(medicines))
	for i := range medicines {
		responses = append(responses, *MedicineToResponse(&medicines[i]))
	}
	return responses
}
