package entity

import (
	"time"

	"gorm.io/gorm"
)

// StationaryRoom hosts at most one pet for in-patient treatment.
//
// Occupancy is derived from the pet binding and kept in sync by BeforeSave:
// binding a pet flips IsOccupied true and auto-stamps AdmissionDate,
// clearing the pet flips it false and auto-stamps ReleaseDate. Explicit
// dates set by the caller win over auto-stamping. A release date earlier
// than the admission date is cleared rather than rejected.
type StationaryRoom struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	RoomNumber    string     `gorm:"type:varchar(16);uniqueIndex;not null" json:"room_number"`
	IsOccupied    bool       `gorm:"not null;default:false" json:"is_occupied"`
	PetID         *int       `gorm:"uniqueIndex" json:"pet_id,omitempty"`
	AdmissionDate *time.Time `json:"admission_date,omitempty"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Pet *Pet `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (StationaryRoom) TableName() string {
	return "stationary_rooms"
}

// BeforeSave keeps IsOccupied and the admission/release timestamps in sync
// with the pet binding.
func (r *StationaryRoom) BeforeSave(tx *gorm.DB) error {
	now := time.Now()
	if r.PetID != nil && !r.IsOccupied {
		r.IsOccupied = true
		if r.AdmissionDate == nil {
			r.AdmissionDate = &now
		}
	} else if r.PetID == nil && r.IsOccupied {
		r.IsOccupied = false
		if r.ReleaseDate == nil {
			r.ReleaseDate = &now
		}
	}
	// Negative stays are an artifact, not an error: drop the release date.
	if r.AdmissionDate != nil && r.ReleaseDate != nil && r.ReleaseDate.Before(*r.AdmissionDate) {
		r.ReleaseDate = nil
	}
	return nil
}
