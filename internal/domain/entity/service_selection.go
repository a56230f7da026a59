package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceSelection is a priced line item on a medical card.
//
// One row per (card, service). Price was validated against the service's
// fixed-or-ranged contract at selection time and is summed as-is by the
// billing service.
type ServiceSelection struct {
	ID            int             `gorm:"primaryKey" json:"id"`
	MedicalCardID int             `gorm:"not null;uniqueIndex:idx_card_service" json:"medical_card_id"`
	ServiceID     int             `gorm:"not null;uniqueIndex:idx_card_service" json:"service_id"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`

	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (ServiceSelection) TableName() string {
	return "service_selections"
}
