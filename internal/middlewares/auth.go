package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/logger"
	"github.com/sbilibin2017/gw-water-quality/internal/services"
)

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionChecker resolves a token to the owner of its active session.
type SessionChecker interface {
	CurrentUser(ctx context.Context, token string) (string, error)
}

type authContextKey int

const (
	usernameKey authContextKey = iota
	tokenKey
)

// AuthMiddleware rejects requests without an active session and puts the
// session owner into the request context.
func AuthMiddleware(tokener Tokener, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "request_id", GetRequestIDFromContext(ctx), "err", err)
				writeError(w, http.StatusUnauthorized, services.ErrNotAuthenticated)
				return
			}

			username, err := sessions.CurrentUser(ctx, tokenString)
			if err != nil {
				if errors.Is(err, services.ErrStorageUnavailable) {
					logger.Log.Errorw("session lookup failed", "request_id", GetRequestIDFromContext(ctx), "err", err)
					writeError(w, http.StatusInternalServerError, err)
					return
				}
				logger.Log.Infow("authorization failed", "request_id", GetRequestIDFromContext(ctx), "err", err)
				writeError(w, http.StatusUnauthorized, services.ErrNotAuthenticated)
				return
			}

			ctx = setTokenToContext(ctx, tokenString)
			ctx = setUsernameToContext(ctx, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware lets anonymous requests through. The token is
// kept in the context whenever one is presented; the username only when
// its session is active.
func OptionalAuthMiddleware(tokener Tokener, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx = setTokenToContext(ctx, tokenString)

			username, err := sessions.CurrentUser(ctx, tokenString)
			switch {
			case err == nil:
				ctx = setUsernameToContext(ctx, username)
			case errors.Is(err, services.ErrStorageUnavailable):
				logger.Log.Errorw("session lookup failed", "request_id", GetRequestIDFromContext(ctx), "err", err)
				writeError(w, http.StatusInternalServerError, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func setUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

func setTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// GetUsernameFromContext returns the authenticated username, or "" for
// anonymous requests.
func GetUsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// GetTokenFromContext returns the presented token, or "".
func GetTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
