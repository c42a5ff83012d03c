package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/security"
)

type contextKey string

const callerKey contextKey = "caller"

// CallerFromContext returns the caller identity attached by the auth
// middleware, or the zero (anonymous) Caller.
func CallerFromContext(ctx context.Context) domain.Caller {
	caller, _ := ctx.Value(callerKey).(domain.Caller)
	return caller
}

// Middleware gates routes on the caller's credential.
type Middleware struct {
	tokens security.TokenManager
}

func NewMiddleware(tokens security.TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

func (m *Middleware) resolveCaller(r *http.Request) (domain.Caller, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return domain.Caller{}, false
	}

	claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return domain.Caller{}, false
	}
	return domain.Caller{UserID: claims.UserID, Role: claims.Role}, true
}

// RequireAuth rejects requests without a valid bearer token.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := m.resolveCaller(r)
		if !ok {
			respondError(w, domain.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey, caller)))
	})
}

// OptionalAuth attaches the caller when a valid token is present and
// lets anonymous requests through untouched.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if caller, ok := m.resolveCaller(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), callerKey, caller))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects authenticated non-admin callers.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !CallerFromContext(r.Context()).IsAdmin() {
			respondError(w, domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}
