package handler

import (
	"net/http"
	"strconv"

	"vetclinic-backoffice/internal/usecase"
	"vetclinic-backoffice/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// ListRecent returns the most recent audit entries; ?limit=N caps the result.
func (h *AuditLogHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.auditLogUsecase.ListRecent(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}
	response.Success(w, http.StatusOK, "", logs)
}
