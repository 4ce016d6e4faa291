package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/service"

	"github.com/gorilla/mux"
)

type LevyHandler struct {
	levySvc service.LevyService
}

func NewLevyHandler(levySvc service.LevyService) *LevyHandler {
	return &LevyHandler{levySvc: levySvc}
}

type levyDecisionRequest struct {
	Action    string  `json:"action"` // approve_levy or reject_levy
	PaymentID int32   `json:"payment_id"`
	RoomIDs   []int32 `json:"room_ids"`
	Reason    string  `json:"reason,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// HandleDecision is the single admin decision endpoint for levy payments.
func (h *LevyHandler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Message: "Error: not authenticated"})
		return
	}

	var req levyDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	switch req.Action {
	case "approve_levy":
		if err := h.levySvc.ApprovePayment(r.Context(), identity.UserID, req.PaymentID, req.RoomIDs, req.Notes); err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, "Levy payment approved successfully", nil)
	case "reject_levy":
		if err := h.levySvc.RejectPayment(r.Context(), identity.UserID, req.PaymentID, req.RoomIDs, domain.RejectionReason(req.Reason), req.Notes); err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, "Levy payment rejected", nil)
	default:
		writeError(w, domain.NewValidationError("unknown action: %q", req.Action))
	}
}

type submitLevyRequest struct {
	AmountCents   int32   `json:"amount_cents"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	RoomIDs       []int32 `json:"room_ids"`
	Notes         string  `json:"notes,omitempty"`
}

// HandleSubmit lets a property owner submit a levy payment for review.
func (h *LevyHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Message: "Error: not authenticated"})
		return
	}

	var req submitLevyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	payment, err := h.levySvc.SubmitPayment(r.Context(), identity.UserID, req.AmountCents,
		req.PaymentMethod, req.TransactionID, req.PaymentDate, req.RoomIDs, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Levy payment submitted for review", payment)
}

func (h *LevyHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	approvals, err := h.levySvc.ListPendingApprovals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "", approvals)
}

func (h *LevyHandler) HandleListPayments(w http.ResponseWriter, r *http.Request) {
	filter := domain.PaymentFilter{
		Status:   r.URL.Query().Get("status"),
		Method:   r.URL.Query().Get("method"),
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
	}
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	records, count, err := h.levySvc.ListPayments(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "", map[string]any{
		"payments":    records,
		"total_count": count,
		"page":        page,
		"page_size":   pageSize,
	})
}

func (h *LevyHandler) HandlePaymentStats(w http.ResponseWriter, r *http.Request) {
	filter := domain.PaymentFilter{
		Status:   r.URL.Query().Get("status"),
		Method:   r.URL.Query().Get("method"),
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
	}
	stats, err := h.levySvc.GetPaymentStats(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "", stats)
}

func (h *LevyHandler) HandleRoomHistory(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathInt32(r, "roomID")
	if err != nil {
		writeError(w, domain.NewValidationError("invalid room id"))
		return
	}
	entries, err := h.levySvc.GetRoomHistory(r.Context(), roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "", entries)
}

func queryInt32(r *http.Request, name string, def int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return def
	}
	return int32(v)
}

func pathInt32(r *http.Request, name string) (int32, error) {
	v, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	return int32(v), err
}
