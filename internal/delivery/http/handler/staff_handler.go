package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/usecase"
	"vetclinic-backoffice/pkg/response"
	"vetclinic-backoffice/pkg/validator"
)

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{staffUsecase: staffUsecase, validator: validator}
}

func (h *StaffHandler) registerError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrPhoneAlreadyExists:
		response.Conflict(w, "Phone number already exists")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	case usecase.ErrRoleNotFound:
		response.BadRequest(w, "Role not found")
	default:
		response.InternalServerError(w, "Failed to register")
	}
}

func (h *StaffHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.staffUsecase.RegisterDoctor(r.Context(), &req)
	if err != nil {
		h.registerError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Doctor registered successfully", doctor)
}

func (h *StaffHandler) RegisterNurse(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterNurseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	nurse, err := h.staffUsecase.RegisterNurse(r.Context(), &req)
	if err != nil {
		h.registerError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Nurse registered successfully", nurse)
}

func (h *StaffHandler) RegisterModerator(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterModeratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	moderator, err := h.staffUsecase.RegisterModerator(r.Context(), &req)
	if err != nil {
		h.registerError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Moderator registered successfully", moderator)
}

func (h *StaffHandler) RegisterClient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.staffUsecase.RegisterClient(r.Context(), &req)
	if err != nil {
		h.registerError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Client registered successfully", client)
}

func (h *StaffHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.staffUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}
	response.Success(w, http.StatusOK, "", doctors)
}

func (h *StaffHandler) ListNurses(w http.ResponseWriter, r *http.Request) {
	nurses, err := h.staffUsecase.ListNurses(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list nurses")
		return
	}
	response.Success(w, http.StatusOK, "", nurses)
}

func (h *StaffHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.staffUsecase.ListClients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list clients")
		return
	}
	response.Success(w, http.StatusOK, "", clients)
}
