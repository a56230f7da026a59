package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodOther PaymentMethod = "other"
)

// Payment settles exactly one medical card.
//
// A zero Amount is backfilled from the card's total fee at the paid
// transition. Settlement side effects fire on the pending→paid transition
// only, detected against a snapshot of the previous status.
type Payment struct {
	ID            int             `gorm:"primaryKey" json:"id"`
	MedicalCardID int             `gorm:"not null;uniqueIndex" json:"medical_card_id"`
	Status        PaymentStatus   `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	Method        PaymentMethod   `gorm:"type:varchar(16);not null" json:"method"`
	Amount        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount"`
	ProcessedByID int             `gorm:"not null;index" json:"processed_by_id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	MedicalCard MedicalCard      `gorm:"foreignKey:MedicalCardID" json:"medical_card,omitempty"`
	ProcessedBy ModeratorProfile `gorm:"foreignKey:ProcessedByID" json:"processed_by,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsPaid checks if the payment has been settled
func (p *Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}
