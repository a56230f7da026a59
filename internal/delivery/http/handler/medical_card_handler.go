package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/service"
	"vetclinic-backoffice/internal/usecase"
	"vetclinic-backoffice/pkg/response"
	"vetclinic-backoffice/pkg/validator"

	"github.com/gorilla/mux"
)

type MedicalCardHandler struct {
	cardUsecase usecase.MedicalCardUsecase
	validator   *validator.CustomValidator
}

func NewMedicalCardHandler(cardUsecase usecase.MedicalCardUsecase, validator *validator.CustomValidator) *MedicalCardHandler {
	return &MedicalCardHandler{cardUsecase: cardUsecase, validator: validator}
}

func (h *MedicalCardHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrCardNotFound:
		response.NotFound(w, "Medical card not found")
	case usecase.ErrClientNotFound:
		response.BadRequest(w, "Client not found")
	case usecase.ErrPetNotFound:
		response.BadRequest(w, "Pet not found")
	case usecase.ErrPetNotOwned:
		response.BadRequest(w, "Pet does not belong to the client")
	case usecase.ErrDoctorNotFound:
		response.BadRequest(w, "Doctor not found")
	case usecase.ErrNurseNotFound:
		response.BadRequest(w, "Nurse not found")
	case usecase.ErrRevisitInPast:
		response.BadRequest(w, "Revisit date cannot be in the past")
	case usecase.ErrAdmissionDateRequired:
		response.BadRequest(w, "Room admission date is required when assigning a room")
	case usecase.ErrInvalidDateRange:
		response.BadRequest(w, "End date cannot be before start date")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	case service.ErrRoomNotFound:
		response.BadRequest(w, "Stationary room not found")
	case service.ErrRoomOccupied:
		response.Conflict(w, "Stationary room is occupied by another pet")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *MedicalCardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	card, err := h.cardUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create medical card")
		return
	}
	response.Success(w, http.StatusCreated, "Medical card created successfully", card)
}

func (h *MedicalCardHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical card ID")
		return
	}

	card, err := h.cardUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get medical card")
		return
	}
	response.Success(w, http.StatusOK, "", card)
}

func (h *MedicalCardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list medical cards")
		return
	}
	response.Success(w, http.StatusOK, "", cards)
}

func (h *MedicalCardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical card ID")
		return
	}

	var req dto.UpdateMedicalCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	card, err := h.cardUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update medical card")
		return
	}
	response.Success(w, http.StatusOK, "Medical card updated successfully", card)
}

// SelectServices replaces the card's service lines and medicine set and
// returns the card with the recomputed total fee.
func (h *MedicalCardHandler) SelectServices(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical card ID")
		return
	}

	var req dto.SelectServicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	card, err := h.cardUsecase.SelectServices(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrCardNotFound:
			response.NotFound(w, "Medical card not found")
		case service.ErrUnknownService:
			response.BadRequest(w, "Unknown service in selection")
		case service.ErrUnknownMedicine:
			response.BadRequest(w, "Unknown medicine in selection")
		case service.ErrInvalidPrice:
			response.BadRequest(w, "Selected price must match the service's fixed price")
		case service.ErrPriceOutOfRange:
			response.BadRequest(w, "Selected price is outside the service's allowed range")
		default:
			response.InternalServerError(w, "Failed to select services")
		}
		return
	}
	response.Success(w, http.StatusOK, "Services selected successfully", card)
}
