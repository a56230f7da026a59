package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientProfile holds pet-owner data linked 1:1 to a user
type ClientProfile struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ExtraPhoneNumber *string   `gorm:"type:varchar(17)" json:"extra_phone_number,omitempty"`
	Address          *string   `gorm:"type:varchar(255)" json:"address,omitempty"`
	Language         *string   `gorm:"type:varchar(5)" json:"language,omitempty"`
	CreatedByID      *int      `gorm:"index" json:"created_by_id,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Pets []Pet `gorm:"foreignKey:ClientID" json:"pets,omitempty"`
}

func (ClientProfile) TableName() string {
	return "client_profiles"
}
