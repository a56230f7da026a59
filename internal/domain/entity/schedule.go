package entity

import "time"

// Schedule is a doctor-authored treatment window assigning one nurse to one
// card. Tasks must fall inside [StartDate, EndDate] and carry the assigned
// nurse.
type Schedule struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	MedicalCardID   int       `gorm:"not null;index" json:"medical_card_id"`
	CreatedByID     int       `gorm:"not null;index" json:"created_by_id"`
	AssignedNurseID int       `gorm:"not null;index" json:"assigned_nurse_id"`
	StartDate       time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate         time.Time `gorm:"type:date;not null" json:"end_date"`
	Notes           *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	MedicalCard   MedicalCard   `gorm:"foreignKey:MedicalCardID" json:"medical_card,omitempty"`
	CreatedBy     DoctorProfile `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	AssignedNurse NurseProfile  `gorm:"foreignKey:AssignedNurseID" json:"assigned_nurse,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// Covers reports whether the given day falls within the schedule window,
// inclusive on both ends. Dates are compared at day granularity.
func (s *Schedule) Covers(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	start := s.StartDate.Truncate(24 * time.Hour)
	end := s.EndDate.Truncate(24 * time.Hour)
	return !d.Before(start) && !d.After(end)
}
