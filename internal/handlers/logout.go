package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/middlewares"
)

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler for logout.
// @Summary Log out
// @Description Ends the session of the presented token. Succeeds without a token or for an already ended session.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logout successful!"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := svc.Logout(ctx, middlewares.GetTokenFromContext(ctx)); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logout successful!"})
	}
}
