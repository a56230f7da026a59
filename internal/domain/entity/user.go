package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table.
// Login is phone-number based; role profiles hang off this row.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID      int       `gorm:"not null;index" json:"role_id"`
	PhoneNumber string    `gorm:"type:varchar(17);uniqueIndex;not null" json:"phone_number"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	FirstName   string    `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(150);not null" json:"last_name"`
	TelegramID  *string   `gorm:"type:varchar(64)" json:"telegram_id,omitempty"`
	IsActive    *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role             Role              `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	DoctorProfile    *DoctorProfile    `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	NurseProfile     *NurseProfile     `gorm:"foreignKey:UserID" json:"nurse_profile,omitempty"`
	ClientProfile    *ClientProfile    `gorm:"foreignKey:UserID" json:"client_profile,omitempty"`
	ModeratorProfile *ModeratorProfile `gorm:"foreignKey:UserID" json:"moderator_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName returns "first last" for display and logging
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
