package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a clinic service offering.
//
// Price is the base price. When PriceUpTo is set the service supports a
// variable price: a selection may carry any price in [Price, PriceUpTo].
// When PriceUpTo is nil the selection price must equal Price exactly.
type Service struct {
	ID          int              `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"type:varchar(255);not null" json:"name"`
	Price       decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price"`
	PriceUpTo   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"price_up_to,omitempty"`
	Description *string          `gorm:"type:text" json:"description,omitempty"`
	CreatedByID *int             `gorm:"index" json:"created_by_id,omitempty"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (Service) TableName() string {
	return "services"
}

// HasPriceRange reports whether the service accepts a variable price
func (s *Service) HasPriceRange() bool {
	return s.PriceUpTo != nil
}

// AcceptsPrice checks a selection price against the fixed-or-ranged contract
func (s *Service) AcceptsPrice(price decimal.Decimal) bool {
	if s.PriceUpTo == nil {
		return price.Equal(s.Price)
	}
	return price.GreaterThanOrEqual(s.Price) && price.LessThanOrEqual(*s.PriceUpTo)
}
