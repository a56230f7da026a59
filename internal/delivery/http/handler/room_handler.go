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

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
	validator   *validator.CustomValidator
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, validator *validator.CustomValidator) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase, validator: validator}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create room")
		return
	}
	response.Success(w, http.StatusCreated, "Room created successfully", room)
}

// List returns all rooms; ?free=true narrows to unoccupied rooms.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	freeOnly := r.URL.Query().Get("free") == "true"

	rooms, err := h.roomUsecase.List(r.Context(), freeOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to list rooms")
		return
	}
	response.Success(w, http.StatusOK, "", rooms)
}

func (h *RoomHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	var req dto.AssignRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.Assign(r.Context(), id, &req)
	if err != nil {
		switch err {
		case service.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case service.ErrRoomOccupied:
			response.Conflict(w, "Room is occupied by another pet")
		case usecase.ErrPetNotFound:
			response.BadRequest(w, "Pet not found")
		case usecase.ErrInvalidDateRange:
			response.BadRequest(w, "Release date cannot be before admission date")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to assign room")
		}
		return
	}
	response.Success(w, http.StatusOK, "Room assigned successfully", room)
}

func (h *RoomHandler) Release(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	room, err := h.roomUsecase.Release(r.Context(), id)
	if err != nil {
		switch err {
		case service.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		default:
			response.InternalServerError(w, "Failed to release room")
		}
		return
	}
	response.Success(w, http.StatusOK, "Room released successfully", room)
}
