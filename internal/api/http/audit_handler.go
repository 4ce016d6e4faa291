package http

import (
	"net/http"

	"hostelhub-backend/internal/service"
)

type AuditHandler struct {
	auditSvc service.AuditService
}

func NewAuditHandler(auditSvc service.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

func (h *AuditHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	actions, count, err := h.auditSvc.ListAdminActions(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "", map[string]any{
		"actions":     actions,
		"total_count": count,
	})
}
