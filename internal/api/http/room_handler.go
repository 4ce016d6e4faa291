package http

import (
	"net/http"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/service"
)

type RoomHandler struct {
	roomSvc service.RoomService
}

func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

func (h *RoomHandler) HandleGetRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathInt32(r, "roomID")
	if err != nil {
		writeError(w, domain.NewValidationError("invalid room id"))
		return
	}
	room, err := h.roomSvc.GetRoom(r.Context(), roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "", room)
}

// HandleListMyRooms returns the calling owner's properties and rooms with their
// levy status.
func (h *RoomHandler) HandleListMyRooms(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Message: "Error: not authenticated"})
		return
	}

	properties, rooms, err := h.roomSvc.ListOwnerRooms(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "", map[string]any{
		"properties": properties,
		"rooms":      rooms,
	})
}
