package http

import (
	"net/http"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

func (h *NotificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Message: "Error: not authenticated"})
		return
	}

	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)
	notes, count, err := h.noteSvc.GetNotifications(r.Context(), identity.UserID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "", map[string]any{
		"notifications": notes,
		"total_count":   count,
	})
}

func (h *NotificationHandler) HandleMarkAsRead(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Message: "Error: not authenticated"})
		return
	}

	noteID, err := pathInt32(r, "notificationID")
	if err != nil {
		writeError(w, domain.NewValidationError("invalid notification id"))
		return
	}
	if err := h.noteSvc.MarkAsRead(r.Context(), identity.UserID, noteID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Notification marked as read", nil)
}
