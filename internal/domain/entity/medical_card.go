package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MedicalCardStatus represents the lifecycle status of a medical card
type MedicalCardStatus string

const (
	CardStatusPending    MedicalCardStatus = "pending"
	CardStatusInProgress MedicalCardStatus = "in_progress"
	CardStatusPaid       MedicalCardStatus = "paid"
)

// GeneralCondition describes the patient's overall state on examination
type GeneralCondition string

const (
	ConditionHealthy  GeneralCondition = "healthy"
	ConditionSick     GeneralCondition = "sick"
	ConditionCritical GeneralCondition = "critical"
)

// MedicalCard records one visit: the billing unit of the clinic.
//
// TotalFee is derived state. It is never written by callers directly; the
// billing service recomputes it on every selection change with a narrow
// single-column update so the write cannot re-trigger selection handlers.
type MedicalCard struct {
	ID       int               `gorm:"primaryKey" json:"id"`
	ClientID int               `gorm:"not null;index" json:"client_id"`
	PetID    int               `gorm:"not null;index" json:"pet_id"`
	DoctorID int               `gorm:"not null;index" json:"doctor_id"`
	NurseID  *int              `gorm:"index" json:"nurse_id,omitempty"`
	Status   MedicalCardStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`

	// In-patient room binding; dates carried here take precedence over the
	// room's auto-stamped timestamps.
	StationaryRoomID  *int       `gorm:"index" json:"stationary_room_id,omitempty"`
	RoomAdmissionDate *time.Time `json:"room_admission_date,omitempty"`
	RoomReleaseDate   *time.Time `json:"room_release_date,omitempty"`

	// Examination details
	Weight           *decimal.Decimal `gorm:"type:decimal(6,2)" json:"weight,omitempty"`
	BloodPressure    *string          `gorm:"type:varchar(50)" json:"blood_pressure,omitempty"`
	MucousMembrane   *string          `gorm:"type:varchar(100)" json:"mucous_membrane,omitempty"`
	HeartRate        *int             `json:"heart_rate,omitempty"`
	RespiratoryRate  *int             `json:"respiratory_rate,omitempty"`
	GeneralCondition GeneralCondition `gorm:"type:varchar(16);not null;default:'healthy'" json:"general_condition"`
	ChestCondition   *string          `gorm:"type:text" json:"chest_condition,omitempty"`
	BodyTemperature  *decimal.Decimal `gorm:"type:decimal(5,2)" json:"body_temperature,omitempty"`

	Anamnesis *string `gorm:"type:text" json:"anamnesis,omitempty"`
	Diagnosis string  `gorm:"type:text;not null" json:"diagnosis"`
	Diet      *string `gorm:"type:text" json:"diet,omitempty"`
	Notes     *string `gorm:"type:text" json:"notes,omitempty"`

	RevisitDate *time.Time      `gorm:"type:date" json:"revisit_date,omitempty"`
	TotalFee    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_fee"`
	ClosedAt    *time.Time      `json:"closed_at,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client         ClientProfile   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Pet            Pet             `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Doctor         DoctorProfile   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Nurse          *NurseProfile   `gorm:"foreignKey:NurseID" json:"nurse,omitempty"`
	StationaryRoom *StationaryRoom `gorm:"foreignKey:StationaryRoomID" json:"stationary_room,omitempty"`

	// Read-convenience membership sets; priced line items live in
	// service_selections.
	Services  []Service  `gorm:"many2many:medical_card_services" json:"services,omitempty"`
	Medicines []Medicine `gorm:"many2many:medical_card_medicines" json:"medicines,omitempty"`
}

func (MedicalCard) TableName() string {
	return "medical_cards"
}

// BeforeSave keeps ClosedAt in sync with the paid status: stamped exactly
// when the card becomes paid, cleared if the card is ever reopened.
func (c *MedicalCard) BeforeSave(tx *gorm.DB) error {
	if c.Status == CardStatusPaid && c.ClosedAt == nil {
		now := time.Now()
		c.ClosedAt = &now
	} else if c.Status != CardStatusPaid && c.ClosedAt != nil {
		c.ClosedAt = nil
	}
	return nil
}

// IsPaid checks if the card has been settled
func (c *MedicalCard) IsPaid() bool {
	return c.Status == CardStatusPaid
}
