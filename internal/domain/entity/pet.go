package entity

import "time"

// PetGender represents the gender of a pet
type PetGender string

const (
	PetGenderMale   PetGender = "male"
	PetGenderFemale PetGender = "female"
)

// Pet is a client-owned animal; at most one stationary room may host it
type Pet struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	ClientID  int       `gorm:"not null;index" json:"client_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Breed     *string   `gorm:"type:varchar(255)" json:"breed,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Gender    PetGender `gorm:"type:varchar(16);not null" json:"gender"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Client ClientProfile `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}
