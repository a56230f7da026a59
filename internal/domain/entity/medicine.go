package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine is a clinic inventory item billed onto medical cards at Price
type Medicine struct {
	ID            int              `gorm:"primaryKey" json:"id"`
	Name          string           `gorm:"type:varchar(255);not null" json:"name"`
	Quantity      int              `gorm:"not null" json:"quantity"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"original_price,omitempty"`
	Price         decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price"`
	ExpireDate    time.Time        `gorm:"type:date;not null" json:"expire_date"`
	Description   *string          `gorm:"type:text" json:"description,omitempty"`
	CreatedByID   *int             `gorm:"index" json:"created_by_id,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
