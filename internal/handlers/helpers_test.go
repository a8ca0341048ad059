package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/middlewares"
	"github.com/sbilibin2017/gw-water-quality/internal/services"
)

const sampleBody = `{"pH":7,"Hardness":150,"Solids":500,"Chloramines":4,"Sulfate":250,` +
	`"Conductivity":500,"Organic_carbon":2,"Trihalomethanes":80,"Turbidity":1}`

// staticSession resolves a single bearer token to a single user.
type staticSession struct {
	token    string
	username string
}

func (s staticSession) GetTokenFromRequest(_ context.Context, r *http.Request) (string, error) {
	if s.token == "" {
		return "", errors.New("no token")
	}
	return s.token, nil
}

func (s staticSession) CurrentUser(_ context.Context, token string) (string, error) {
	if s.username == "" || token != s.token {
		return "", services.ErrNotAuthenticated
	}
	return s.username, nil
}

// withSession runs h behind the optional auth middleware with a fixed session.
func withSession(h http.Handler, token, username string) http.Handler {
	s := staticSession{token: token, username: username}
	return middlewares.OptionalAuthMiddleware(s, s)(h)
}
