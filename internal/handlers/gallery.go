package handlers

//go:generate mockgen -source=gallery.go -destination=gallery_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/middlewares"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// GalleryReader defines the interface that the service must implement.
type GalleryReader interface {
	Gallery(ctx context.Context, username string) (*models.GalleryView, error)
}

// NewGalleryHandler returns an HTTP handler for the per-feature time series.
// @Summary Gallery data
// @Tags history
// @Produce json
// @Success 200 {object} models.GalleryView "One series per parameter"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /gallery [get]
// @Security BearerAuth
func NewGalleryHandler(svc GalleryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		view, err := svc.Gallery(ctx, middlewares.GetUsernameFromContext(ctx))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}
