package dto

import "time"

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required,max=16"`
}

type AssignRoomRequest struct {
	PetID         int     `json:"pet_id" validate:"required"`
	AdmissionDate *string `json:"admission_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ReleaseDate   *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type RoomResponse struct {
	ID            int        `json:"id"`
	RoomNumber    string     `json:"room_number"`
	IsOccupied    bool       `json:"is_occupied"`
	PetID         *int       `json:"pet_id,omitempty"`
	PetName       string     `json:"pet_name,omitempty"`
	AdmissionDate *time.Time `json:"admission_date,omitempty"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}
