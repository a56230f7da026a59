package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDay accumulates the revenue settled on one calendar date.
// Incremented atomically per settlement, never recomputed from history.
type PaymentDay struct {
	ID    int             `gorm:"primaryKey" json:"id"`
	Date  time.Time       `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Price decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"price"`
}

func (PaymentDay) TableName() string {
	return "payment_days"
}
