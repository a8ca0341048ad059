package handlers

//go:generate mockgen -source=report.go -destination=report_mock.go -package=handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/middlewares"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// ReportBuilder defines the interface that the service must implement.
type ReportBuilder interface {
	Report(raw map[string]any) (*models.Report, error)
}

// ReportFileRenderer defines the interface that the service must implement.
type ReportFileRenderer interface {
	RenderReport(ctx context.Context, username string, raw map[string]any) (*models.ReportArtifact, error)
}

// ReportFileResponse points to a stored report document
// swagger:model ReportFileResponse
type ReportFileResponse struct {
	// Object key
	Key string `json:"key"`
	// Temporary download link
	URL string `json:"url"`
}

// NewReportHandler returns an HTTP handler for the report content.
// @Summary Report data
// @Tags reporting
// @Accept json
// @Produce json
// @Param parameters body models.Parameters true "Water sample"
// @Success 200 {object} models.Report "Report content"
// @Failure 400 {object} handlers.ErrorResponse "Missing or non numeric parameter"
// @Router /report [post]
func NewReportHandler(svc ReportBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := decodeParameters(r)
		if err != nil {
			writeError(w, err)
			return
		}

		report, err := svc.Report(raw)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// NewReportFileHandler returns an HTTP handler that renders the report
// document. Stored documents are returned as a link, others as a download.
// @Summary Report document
// @Tags reporting
// @Accept json
// @Produce json,plain
// @Param parameters body models.Parameters true "Water sample"
// @Success 200 {object} handlers.ReportFileResponse "Stored document"
// @Failure 400 {object} handlers.ErrorResponse "Missing or non numeric parameter"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /report/file [post]
// @Security BearerAuth
func NewReportFileHandler(svc ReportFileRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw, err := decodeParameters(r)
		if err != nil {
			writeError(w, err)
			return
		}

		artifact, err := svc.RenderReport(ctx, middlewares.GetUsernameFromContext(ctx), raw)
		if err != nil {
			writeError(w, err)
			return
		}

		if artifact.URL != "" {
			writeJSON(w, http.StatusOK, ReportFileResponse{Key: artifact.Key, URL: artifact.URL})
			return
		}

		w.Header().Set("Content-Type", artifact.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
		w.WriteHeader(http.StatusOK)
		w.Write(artifact.Content)
	}
}
