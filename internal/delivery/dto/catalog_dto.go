package dto

import "github.com/shopspring/decimal"

type CreateServiceRequest struct {
	Name        string           `json:"name" validate:"required"`
	Price       decimal.Decimal  `json:"price" validate:"required"`
	PriceUpTo   *decimal.Decimal `json:"price_up_to,omitempty"`
	Description *string          `json:"description,omitempty"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	PriceUpTo   *decimal.Decimal `json:"price_up_to,omitempty"`
	Description *string          `json:"description,omitempty"`
}

type ServiceResponse struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	PriceUpTo   *decimal.Decimal `json:"price_up_to,omitempty"`
	Description *string          `json:"description,omitempty"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type CreateMedicineRequest struct {
	Name          string           `json:"name" validate:"required"`
	Quantity      int              `json:"quantity" validate:"required,gte=0"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	ExpireDate    string           `json:"expire_date" validate:"required,datetime=2006-01-02"`
	Description   *string          `json:"description,omitempty"`
}

type UpdateMedicineRequest struct {
	Name          *string          `json:"name,omitempty"`
	Quantity      *int             `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	ExpireDate    *string          `json:"expire_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description   *string          `json:"description,omitempty"`
}

type MedicineResponse struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Quantity      int              `json:"quantity"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	ExpireDate    string           `json:"expire_date"`
	Description   *string          `json:"description,omitempty"`
}

type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int                `json:"total"`
}
