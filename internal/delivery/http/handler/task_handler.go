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

type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
	validator   *validator.CustomValidator
}

func NewTaskHandler(taskUsecase usecase.TaskUsecase, validator *validator.CustomValidator) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase, validator: validator}
}

func (h *TaskHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrTaskNotFound:
		response.NotFound(w, "Task not found")
	case usecase.ErrScheduleNotFound:
		response.BadRequest(w, "Schedule not found")
	case usecase.ErrNurseNotFound:
		response.BadRequest(w, "Nurse not found")
	case usecase.ErrNurseScheduleMismatch:
		response.BadRequest(w, "Task nurse must match the schedule's assigned nurse")
	case usecase.ErrDayOutOfRange:
		response.BadRequest(w, "Task day is outside the schedule window")
	case usecase.ErrAlreadyDone:
		response.Conflict(w, "Task is already completed")
	case usecase.ErrInvalidTransition:
		response.Conflict(w, "A completed task cannot be reopened")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	task, err := h.taskUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create task")
		return
	}
	response.Success(w, http.StatusCreated, "Task created successfully", task)
}

func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	task, err := h.taskUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get task")
		return
	}
	response.Success(w, http.StatusOK, "", task)
}

func (h *TaskHandler) ListBySchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := strconv.Atoi(mux.Vars(r)["scheduleId"])
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID")
		return
	}

	tasks, err := h.taskUsecase.ListBySchedule(r.Context(), scheduleID)
	if err != nil {
		h.writeError(w, err, "Failed to list tasks")
		return
	}
	response.Success(w, http.StatusOK, "", tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	task, err := h.taskUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update task")
		return
	}
	response.Success(w, http.StatusOK, "Task updated successfully", task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	if err := h.taskUsecase.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete task")
		return
	}
	response.Success(w, http.StatusOK, "Task deleted successfully", nil)
}

func (h *TaskHandler) CreateDoctorTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	task, err := h.taskUsecase.CreateDoctorTask(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCardNotFound:
			response.BadRequest(w, "Medical card not found")
		case usecase.ErrDoctorNotFound:
			response.Forbidden(w, "Caller is not a doctor")
		case usecase.ErrServiceNotFound:
			response.BadRequest(w, "Service not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create doctor task")
		}
		return
	}
	response.Success(w, http.StatusCreated, "Doctor task created successfully", task)
}

func (h *TaskHandler) ListDoctorTasksByCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := strconv.Atoi(mux.Vars(r)["cardId"])
	if err != nil {
		response.BadRequest(w, "Invalid medical card ID")
		return
	}

	tasks, err := h.taskUsecase.ListDoctorTasksByCard(r.Context(), cardID)
	if err != nil {
		switch err {
		case usecase.ErrCardNotFound:
			response.NotFound(w, "Medical card not found")
		default:
			response.InternalServerError(w, "Failed to list doctor tasks")
		}
		return
	}
	response.Success(w, http.StatusOK, "", tasks)
}

func (h *TaskHandler) UpdateDoctorTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	var req dto.UpdateDoctorTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	task, err := h.taskUsecase.UpdateDoctorTask(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update doctor task")
		return
	}
	response.Success(w, http.StatusOK, "Doctor task updated successfully", task)
}

func (h *TaskHandler) DeleteDoctorTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	if err := h.taskUsecase.DeleteDoctorTask(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete doctor task")
		return
	}
	response.Success(w, http.StatusOK, "Doctor task deleted successfully", nil)
}
