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

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase, validator: validator}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCardNotFound:
			response.BadRequest(w, "Medical card not found")
		case usecase.ErrModeratorNotFound:
			response.Forbidden(w, "Caller is not a moderator")
		case usecase.ErrPaymentExists:
			response.Conflict(w, "Medical card already has a payment")
		default:
			response.InternalServerError(w, "Failed to create payment")
		}
		return
	}
	response.Success(w, http.StatusCreated, "Payment created successfully", payment)
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	payment, err := h.paymentUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		default:
			response.InternalServerError(w, "Failed to get payment")
		}
		return
	}
	response.Success(w, http.StatusOK, "", payment)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list payments")
		return
	}
	response.Success(w, http.StatusOK, "", payments)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	var req dto.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		default:
			response.InternalServerError(w, "Failed to update payment")
		}
		return
	}
	response.Success(w, http.StatusOK, "Payment updated successfully", payment)
}

func (h *PaymentHandler) ListPaymentDays(w http.ResponseWriter, r *http.Request) {
	days, err := h.paymentUsecase.ListPaymentDays(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list payment days")
		return
	}
	response.Success(w, http.StatusOK, "", days)
}
