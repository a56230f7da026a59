package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	MedicalCardID int              `json:"medical_card_id" validate:"required"`
	Method        string           `json:"method" validate:"required,oneof=cash card other"`
	Status        *string          `json:"status,omitempty" validate:"omitempty,oneof=pending paid"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}

type UpdatePaymentRequest struct {
	Method *string          `json:"method,omitempty" validate:"omitempty,oneof=cash card other"`
	Status *string          `json:"status,omitempty" validate:"omitempty,oneof=pending paid"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

type PaymentResponse struct {
	ID            int             `json:"id"`
	MedicalCardID int             `json:"medical_card_id"`
	Status        string          `json:"status"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	ProcessedByID int             `json:"processed_by_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}

type PaymentDayResponse struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
}

type PaymentDayListResponse struct {
	Days  []PaymentDayResponse `json:"days"`
	Total int                  `json:"total"`
}
