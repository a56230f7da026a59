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

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{scheduleUsecase: scheduleUsecase, validator: validator}
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCardNotFound:
			response.BadRequest(w, "Medical card not found")
		case usecase.ErrDoctorNotFound:
			response.Forbidden(w, "Caller is not a doctor")
		case usecase.ErrNurseNotFound:
			response.BadRequest(w, "Nurse not found")
		case usecase.ErrInvalidDateRange:
			response.BadRequest(w, "End date cannot be before start date")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create schedule")
		}
		return
	}
	response.Success(w, http.StatusCreated, "Schedule created successfully", schedule)
}

func (h *ScheduleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID")
		return
	}

	schedule, err := h.scheduleUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		default:
			response.InternalServerError(w, "Failed to get schedule")
		}
		return
	}
	response.Success(w, http.StatusOK, "", schedule)
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.scheduleUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list schedules")
		return
	}
	response.Success(w, http.StatusOK, "", schedules)
}

func (h *ScheduleHandler) ListByCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := strconv.Atoi(mux.Vars(r)["cardId"])
	if err != nil {
		response.BadRequest(w, "Invalid medical card ID")
		return
	}

	schedules, err := h.scheduleUsecase.ListByCard(r.Context(), cardID)
	if err != nil {
		switch err {
		case usecase.ErrCardNotFound:
			response.NotFound(w, "Medical card not found")
		default:
			response.InternalServerError(w, "Failed to list schedules")
		}
		return
	}
	response.Success(w, http.StatusOK, "", schedules)
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID")
		return
	}

	if err := h.scheduleUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		default:
			response.InternalServerError(w, "Failed to delete schedule")
		}
		return
	}
	response.Success(w, http.StatusOK, "Schedule deleted successfully", nil)
}
