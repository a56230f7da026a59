package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/usecase"
	"vetclinic-backoffice/pkg/response"
	"vetclinic-backoffice/pkg/validator"

	"github.com/gorilla/mux"
)

type PetHandler struct {
	petUsecase usecase.PetUsecase
	validator  *validator.CustomValidator
}

func NewPetHandler(petUsecase usecase.PetUsecase, validator *validator.CustomValidator) *PetHandler {
	return &PetHandler{petUsecase: petUsecase, validator: validator}
}

func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.BadRequest(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to create pet")
		}
		return
	}
	response.Success(w, http.StatusCreated, "Pet created successfully", pet)
}

func (h *PetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	pet, err := h.petUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to get pet")
		}
		return
	}
	response.Success(w, http.StatusOK, "", pet)
}

func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pets")
		return
	}
	response.Success(w, http.StatusOK, "", pets)
}

func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	var req dto.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to update pet")
		}
		return
	}
	response.Success(w, http.StatusOK, "Pet updated successfully", pet)
}

func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	if err := h.petUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to delete pet")
		}
		return
	}
	response.Success(w, http.StatusOK, "Pet deleted successfully", nil)
}
