package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateMedicalCardRequest struct {
	ClientID int  `json:"client_id" validate:"required"`
	PetID    int  `json:"pet_id" validate:"required"`
	DoctorID int  `json:"doctor_id" validate:"required"`
	NurseID  *int `json:"nurse_id,omitempty"`

	StationaryRoomID  *int    `json:"stationary_room_id,omitempty"`
	RoomAdmissionDate *string `json:"room_admission_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RoomReleaseDate   *string `json:"room_release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	Weight           *decimal.Decimal `json:"weight,omitempty"`
	BloodPressure    *string          `json:"blood_pressure,omitempty"`
	MucousMembrane   *string          `json:"mucous_membrane,omitempty"`
	HeartRate        *int             `json:"heart_rate,omitempty" validate:"omitempty,gte=0"`
	RespiratoryRate  *int             `json:"respiratory_rate,omitempty" validate:"omitempty,gte=0"`
	GeneralCondition *string          `json:"general_condition,omitempty" validate:"omitempty,oneof=healthy sick critical"`
	ChestCondition   *string          `json:"chest_condition,omitempty"`
	BodyTemperature  *decimal.Decimal `json:"body_temperature,omitempty"`

	Anamnesis   *string `json:"anamnesis,omitempty"`
	Diagnosis   string  `json:"diagnosis" validate:"required"`
	Diet        *string `json:"diet,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	RevisitDate *string `json:"revisit_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateMedicalCardRequest struct {
	NurseID *int    `json:"nurse_id,omitempty"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress paid"`

	StationaryRoomID  *int    `json:"stationary_room_id,omitempty"`
	RoomAdmissionDate *string `json:"room_admission_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RoomReleaseDate   *string `json:"room_release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	Weight           *decimal.Decimal `json:"weight,omitempty"`
	BloodPressure    *string          `json:"blood_pressure,omitempty"`
	MucousMembrane   *string          `json:"mucous_membrane,omitempty"`
	HeartRate        *int             `json:"heart_rate,omitempty" validate:"omitempty,gte=0"`
	RespiratoryRate  *int             `json:"respiratory_rate,omitempty" validate:"omitempty,gte=0"`
	GeneralCondition *string          `json:"general_condition,omitempty" validate:"omitempty,oneof=healthy sick critical"`
	ChestCondition   *string          `json:"chest_condition,omitempty"`
	BodyTemperature  *decimal.Decimal `json:"body_temperature,omitempty"`

	Anamnesis   *string `json:"anamnesis,omitempty"`
	Diagnosis   *string `json:"diagnosis,omitempty"`
	Diet        *string `json:"diet,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	RevisitDate *string `json:"revisit_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ServicePickRequest is one requested service line; a nil price means the
// service's base price.
type ServicePickRequest struct {
	ServiceID int              `json:"service_id" validate:"required"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

// SelectServicesRequest replaces the card's selections in full.
type SelectServicesRequest struct {
	Services  []ServicePickRequest `json:"services" validate:"dive"`
	Medicines []int                `json:"medicines"`
}

type ServiceSelectionResponse struct {
	ServiceID   int             `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Price       decimal.Decimal `json:"price"`
}

type MedicalCardResponse struct {
	ID         int    `json:"id"`
	ClientID   int    `json:"client_id"`
	ClientName string `json:"client_name,omitempty"`
	PetID      int    `json:"pet_id"`
	PetName    string `json:"pet_name,omitempty"`
	DoctorID   int    `json:"doctor_id"`
	DoctorName string `json:"doctor_name,omitempty"`
	NurseID    *int   `json:"nurse_id,omitempty"`
	Status     string `json:"status"`

	StationaryRoomID  *int       `json:"stationary_room_id,omitempty"`
	RoomAdmissionDate *time.Time `json:"room_admission_date,omitempty"`
	RoomReleaseDate   *time.Time `json:"room_release_date,omitempty"`

	Weight           *decimal.Decimal `json:"weight,omitempty"`
	BloodPressure    *string          `json:"blood_pressure,omitempty"`
	MucousMembrane   *string          `json:"mucous_membrane,omitempty"`
	HeartRate        *int             `json:"heart_rate,omitempty"`
	RespiratoryRate  *int             `json:"respiratory_rate,omitempty"`
	GeneralCondition string           `json:"general_condition"`
	ChestCondition   *string          `json:"chest_condition,omitempty"`
	BodyTemperature  *decimal.Decimal `json:"body_temperature,omitempty"`

	Anamnesis   *string `json:"anamnesis,omitempty"`
	Diagnosis   string  `json:"diagnosis"`
	Diet        *string `json:"diet,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	RevisitDate *string `json:"revisit_date,omitempty"`

	Services  []ServiceSelectionResponse `json:"services,omitempty"`
	Medicines []MedicineResponse         `json:"medicines,omitempty"`

	TotalFee  decimal.Decimal `json:"total_fee"`
	ClosedAt  *time.Time      `json:"closed_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type MedicalCardListResponse struct {
	Cards []MedicalCardResponse `json:"cards"`
	Total int                   `json:"total"`
}
