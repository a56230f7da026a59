package handler

import (
	"net/http"
	"strconv"

	"vetclinic-backoffice/internal/usecase"
	"vetclinic-backoffice/pkg/response"

	"github.com/gorilla/mux"
)

type SalaryHandler struct {
	salaryUsecase usecase.SalaryUsecase
}

func NewSalaryHandler(salaryUsecase usecase.SalaryUsecase) *SalaryHandler {
	return &SalaryHandler{salaryUsecase: salaryUsecase}
}

func (h *SalaryHandler) ListAllDailySalaries(w http.ResponseWriter, r *http.Request) {
	salaries, err := h.salaryUsecase.ListAllDailySalaries(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list daily salaries")
		return
	}
	response.Success(w, http.StatusOK, "", salaries)
}

func (h *SalaryHandler) ListNurseDailySalaries(w http.ResponseWriter, r *http.Request) {
	nurseID, err := strconv.Atoi(mux.Vars(r)["nurseId"])
	if err != nil {
		response.BadRequest(w, "Invalid nurse ID")
		return
	}

	salaries, err := h.salaryUsecase.ListNurseDailySalaries(r.Context(), nurseID)
	if err != nil {
		switch err {
		case usecase.ErrNurseNotFound:
			response.NotFound(w, "Nurse not found")
		default:
			response.InternalServerError(w, "Failed to list daily salaries")
		}
		return
	}
	response.Success(w, http.StatusOK, "", salaries)
}

func (h *SalaryHandler) GetNurseIncome(w http.ResponseWriter, r *http.Request) {
	nurseID, err := strconv.Atoi(mux.Vars(r)["nurseId"])
	if err != nil {
		response.BadRequest(w, "Invalid nurse ID")
		return
	}

	income, err := h.salaryUsecase.GetNurseIncome(r.Context(), nurseID)
	if err != nil {
		switch err {
		case usecase.ErrNurseNotFound:
			response.NotFound(w, "Nurse not found")
		default:
			response.InternalServerError(w, "Failed to get nurse income")
		}
		return
	}
	response.Success(w, http.StatusOK, "", income)
}

func (h *SalaryHandler) GetDoctorIncome(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["doctorId"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	income, err := h.salaryUsecase.GetDoctorIncome(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor income")
		}
		return
	}
	response.Success(w, http.StatusOK, "", income)
}
