package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/middlewares"
	"github.com/sbilibin2017/gw-water-quality/internal/services"
)

// MeResponse represents the current session owner
// swagger:model MeResponse
type MeResponse struct {
	// default: alice
	Username string `json:"username"`
}

// NewMeHandler returns an HTTP handler reporting the current user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Session owner"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.GetUsernameFromContext(r.Context())
		if username == "" {
			writeError(w, services.ErrNotAuthenticated)
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{Username: username})
	}
}
