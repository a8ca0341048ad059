package services

//go:generate mockgen -source=report.go -destination=report_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-water-quality/internal/logger"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// Fixed texts of the chart and report documents.
const (
	ChartTitle   = "Water Quality Parameters"
	ChartXLabel  = "Parameters"
	ChartYLabel  = "Value"
	ReportTitle  = "Water Quality Report"
	ReportFooter = "Thank you for using our system!"

	reportFilename = "water_quality_report"
)

// ReportSeparator separates the report header and footer from the values.
var ReportSeparator = strings.Repeat("-", 40)

// ReportRenderer turns report content into a document.
type ReportRenderer interface {
	Render(report *models.Report) ([]byte, error)
	ContentType() string
	Extension() string
}

// ArtifactStorage keeps rendered documents and hands out download links.
type ArtifactStorage interface {
	Put(ctx context.Context, key string, content []byte, contentType string) error
	PresignGet(ctx context.Context, key string) (string, error)
}

// ReportService builds chart and report data for a single sample.
type ReportService struct {
	renderer ReportRenderer
	storage  ArtifactStorage
	now      func() time.Time
}

// NewReportService creates a new ReportService. storage may be nil,
// in which case rendered reports are returned inline.
func NewReportService(renderer ReportRenderer, storage ArtifactStorage) *ReportService {
	return &ReportService{
		renderer: renderer,
		storage:  storage,
		now:      time.Now,
	}
}

// Chart returns the bar chart data of a sample.
func (s *ReportService) Chart(raw map[string]any) (*models.Chart, error) {
	params, err := models.ParseParameters(raw)
	if err != nil {
		return nil, err
	}

	bars := make([]models.ChartBar, 0, len(models.Features))
	for _, feature := range models.Features {
		v, _ := params.Value(feature)
		bars = append(bars, models.ChartBar{Feature: feature, Value: v})
	}

	return &models.Chart{
		Title:  ChartTitle,
		XLabel: ChartXLabel,
		YLabel: ChartYLabel,
		Bars:   bars,
	}, nil
}

// Report returns the report document content of a sample.
func (s *ReportService) Report(raw map[string]any) (*models.Report, error) {
	params, err := models.ParseParameters(raw)
	if err != nil {
		return nil, err
	}
	return buildReport(params), nil
}

// Standards returns the water quality standards table.
func (s *ReportService) Standards() []models.Standard {
	return models.Standards()
}

// Defaults returns the reference sample used to pre-fill inputs.
func (s *ReportService) Defaults() models.Parameters {
	return models.DefaultParameters()
}

// RenderReport renders the report of a sample. With artifact storage
// configured the document is uploaded and a download link returned.
func (s *ReportService) RenderReport(ctx context.Context, username string, raw map[string]any) (*models.ReportArtifact, error) {
	if username == "" {
		return nil, ErrNotAuthenticated
	}

	params, err := models.ParseParameters(raw)
	if err != nil {
		return nil, err
	}

	content, err := s.renderer.Render(buildReport(params))
	if err != nil {
		logger.Log.Errorw("failed to render report", "username", username, "error", err)
		return nil, err
	}

	artifact := &models.ReportArtifact{
		Filename:    reportFilename + s.renderer.Extension(),
		ContentType: s.renderer.ContentType(),
	}

	if s.storage == nil {
		artifact.Content = content
		return artifact, nil
	}

	key := artifactKey(username, s.now().UTC(), s.renderer.Extension())
	if err := s.storage.Put(ctx, key, content, artifact.ContentType); err != nil {
		logger.Log.Errorw("failed to store report", "username", username, "key", key, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	url, err := s.storage.PresignGet(ctx, key)
	if err != nil {
		logger.Log.Errorw("failed to presign report", "username", username, "key", key, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	artifact.Key = key
	artifact.URL = url
	return artifact, nil
}

func buildReport(params models.Parameters) *models.Report {
	lines := make([]models.ReportLine, 0, len(models.Features))
	for _, st := range models.Standards() {
		v, _ := params.Value(st.Feature)
		lines = append(lines, models.ReportLine{
			Feature: st.Feature,
			Label:   st.Parameter,
			Value:   v,
			Unit:    st.Unit,
		})
	}

	return &models.Report{
		Title:     ReportTitle,
		Separator: ReportSeparator,
		Lines:     lines,
		Footer:    ReportFooter,
	}
}

// artifactKey returns a unique object key for a user's report.
func artifactKey(username string, at time.Time, ext string) string {
	return fmt.Sprintf("reports/%s/%d/%02d/%02d/%s%s",
		username, at.Year(), at.Month(), at.Day(), uuid.New(), ext)
}
