package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ModeratorProfile holds front-desk staff data; moderators process payments
type ModeratorProfile struct {
	ID            int             `gorm:"primaryKey" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	WorkStartDate time.Time       `gorm:"type:date;not null" json:"work_start_date"`
	Salary        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"salary"`
	Active        *bool           `gorm:"not null;default:true" json:"active"`
	CreatedByID   *int            `gorm:"index" json:"created_by_id,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ModeratorProfile) TableName() string {
	return "moderator_profiles"
}
