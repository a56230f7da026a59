package dto

type CreatePetRequest struct {
	ClientID int     `json:"client_id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Breed    *string `json:"breed,omitempty"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
	Gender   string  `json:"gender" validate:"required,oneof=male female"`
	Notes    *string `json:"notes,omitempty"`
}

type UpdatePetRequest struct {
	Name   *string `json:"name,omitempty"`
	Breed  *string `json:"breed,omitempty"`
	Age    *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
	Gender *string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Notes  *string `json:"notes,omitempty"`
}

type PetResponse struct {
	ID         int     `json:"id"`
	ClientID   int     `json:"client_id"`
	ClientName string  `json:"client_name,omitempty"`
	Name       string  `json:"name"`
	Breed      *string `json:"breed,omitempty"`
	Age        *int    `json:"age,omitempty"`
	Gender     string  `json:"gender"`
	Notes      *string `json:"notes,omitempty"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}
