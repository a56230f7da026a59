package converter

import (
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
)

func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            payment.ID,
		MedicalCardID: payment.MedicalCardID,
		Status:        string(payment.Status),
		Method:        string(payment.Method),
		Amount:        payment.Amount,
		ProcessedByID: payment.ProcessedByID,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}

func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, *PaymentToResponse(&payments[i]))
	}
	return responses
}

func PaymentDayToResponse(day *entity.PaymentDay) *dto.PaymentDayResponse {
	return &dto.PaymentDayResponse{
		Date:  day.Date.Format(dateLayout),
		Price: day.Price,
	}
}

func PaymentDaysToResponses(days []entity.PaymentDay) []dto.PaymentDayResponse {
	responses := make([]dto.PaymentDayResponse, 0, len(days))
	for i := range days {
		responses = append(responses, *PaymentDayToResponse(&days[i]))
	}
	return responses
}
