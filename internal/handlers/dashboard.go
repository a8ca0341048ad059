package handlers

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/middlewares"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// DashboardReader defines the interface that the service must implement.
type DashboardReader interface {
	Dashboard(ctx context.Context, username string) (*models.DashboardView, error)
}

// NewDashboardHandler returns an HTTP handler for the history table.
// @Summary Dashboard
// @Description Returns the caller's predictions, oldest first. Anonymous callers get a login prompt.
// @Tags history
// @Produce json
// @Success 200 {object} models.DashboardView "History"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		view, err := svc.Dashboard(ctx, middlewares.GetUsernameFromContext(ctx))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}
