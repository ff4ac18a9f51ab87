package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vaultpass/pwgen-go/internal/middleware"
	"github.com/vaultpass/pwgen-go/internal/service"
)

// AuditHandler serves the generation audit log.
type AuditHandler struct {
	service *service.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(svc *service.AuditService) *AuditHandler {
	return &AuditHandler{service: svc}
}

// HandleListGenerations handles GET /api/v1/generations?limit=N requests.
func (h *AuditHandler) HandleListGenerations(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid limit"))
			return
		}
		limit = n
	}

	records, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLimit) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		operator, _ := middleware.OperatorFromContext(r.Context())
		slog.Error("listing generations failed", "operator", operator, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, records)
}
