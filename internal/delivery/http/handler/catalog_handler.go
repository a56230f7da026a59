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

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, validator: validator}
}

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.catalogUsecase.CreateService(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPriceRange:
			response.BadRequest(w, "price_up_to must be greater than or equal to price")
		default:
			response.InternalServerError(w, "Failed to create service")
		}
		return
	}
	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.catalogUsecase.UpdateService(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrInvalidPriceRange:
			response.BadRequest(w, "price_up_to must be greater than or equal to price")
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}
	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}
	response.Success(w, http.StatusOK, "", services)
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	if err := h.catalogUsecase.DeleteService(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to delete service")
		}
		return
	}
	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

func (h *CatalogHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.catalogUsecase.CreateMedicine(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create medicine")
		}
		return
	}
	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

func (h *CatalogHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medicine ID")
		return
	}

	var req dto.UpdateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.catalogUsecase.UpdateMedicine(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to update medicine")
		}
		return
	}
	response.Success(w, http.StatusOK, "Medicine updated successfully", medicine)
}

func (h *CatalogHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.catalogUsecase.ListMedicines(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list medicines")
		return
	}
	response.Success(w, http.StatusOK, "", medicines)
}

func (h *CatalogHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medicine ID")
		return
	}

	if err := h.catalogUsecase.DeleteMedicine(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to delete medicine")
		}
		return
	}
	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}
