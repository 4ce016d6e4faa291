package http

import (
	"net/http"

	"hostelhub-backend/internal/domain"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth         *AuthHandler
	Levy         *LevyHandler
	Room         *RoomHandler
	Notification *NotificationHandler
	Audit        *AuditHandler
}

// NewRouter wires all routes. Everything under /api/v1 except auth requires a
// valid access token; /admin additionally requires the admin role.
func NewRouter(h Handlers, authMw *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public auth endpoints
	api.HandleFunc("/auth/login", h.Auth.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.HandleRefresh).Methods(http.MethodPost)

	// Authenticated endpoints
	authed := api.NewRoute().Subrouter()
	authed.Use(authMw.Authenticate)

	authed.HandleFunc("/notifications", h.Notification.HandleList).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{notificationID}/read", h.Notification.HandleMarkAsRead).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{roomID}", h.Room.HandleGetRoom).Methods(http.MethodGet)
	authed.HandleFunc("/rooms/{roomID}/levy-history", h.Levy.HandleRoomHistory).Methods(http.MethodGet)

	// Owner endpoints
	owner := authed.NewRoute().Subrouter()
	owner.Use(RequireRole(domain.UserRoleOwner))
	owner.HandleFunc("/owner/rooms", h.Room.HandleListMyRooms).Methods(http.MethodGet)
	owner.HandleFunc("/owner/levy-payments", h.Levy.HandleSubmit).Methods(http.MethodPost)

	// Admin endpoints
	admin := authed.NewRoute().Subrouter()
	admin.Use(RequireRole(domain.UserRoleAdmin))
	admin.HandleFunc("/admin/levy-payments/decision", h.Levy.HandleDecision).Methods(http.MethodPost)
	admin.HandleFunc("/admin/levy-payments/pending", h.Levy.HandleListPending).Methods(http.MethodGet)
	admin.HandleFunc("/admin/payments", h.Levy.HandleListPayments).Methods(http.MethodGet)
	admin.HandleFunc("/admin/payments/stats", h.Levy.HandlePaymentStats).Methods(http.MethodGet)
	admin.HandleFunc("/admin/actions", h.Audit.HandleList).Methods(http.MethodGet)

	return r
}
