package http

import (
	"context"
	"net/http"
	"strings"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/security"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the request-scoped authenticated caller, injected by the auth
// middleware and read by handlers instead of any ambient session state.
type Identity struct {
	UserID int32
	Email  string
	Role   domain.UserRole
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// ContextWithIdentity is exposed for handler tests.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the bearer token and attaches the caller identity.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Message: "Error: missing bearer token"})
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, err)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, security.ErrWrongTokenType)
			return
		}

		identity := Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   domain.UserRole(claims.Role),
		}
		next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
	})
}

// RequireRole gates a subrouter to one role.
func RequireRole(role domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Message: "Error: not authenticated"})
				return
			}
			if identity.Role != role {
				writeJSON(w, http.StatusForbidden, apiResponse{Success: false, Message: "Error: insufficient role"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
