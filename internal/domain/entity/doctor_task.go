package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DoctorTask is a doctor-performed service item on a card. Price defaults
// from the service's base price; the done transition has the same one-shot
// semantics as nurse tasks.
type DoctorTask struct {
	ID            int             `gorm:"primaryKey" json:"id"`
	MedicalCardID int             `gorm:"not null;index" json:"medical_card_id"`
	DoctorID      int             `gorm:"not null;index" json:"doctor_id"`
	ServiceID     int             `gorm:"not null;index" json:"service_id"`
	Description   *string         `gorm:"type:text" json:"description,omitempty"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	IsDone        bool            `gorm:"not null;default:false" json:"is_done"`
	DoneAt        *time.Time      `json:"done_at,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	MedicalCard MedicalCard   `gorm:"foreignKey:MedicalCardID" json:"medical_card,omitempty"`
	Doctor      DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Service     Service       `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (DoctorTask) TableName() string {
	return "doctor_tasks"
}

// MarkDone flips the task to done and stamps DoneAt if unset
func (t *DoctorTask) MarkDone() {
	t.IsDone = true
	if t.DoneAt == nil {
		now := time.Now()
		t.DoneAt = &now
	}
}
