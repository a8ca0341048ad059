package services

//go:generate mockgen -source=history.go -destination=history_mock.go -package=services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-water-quality/internal/logger"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// Messages shown instead of history views.
const (
	MessageDashboardLogin = "Please login to access the dashboard."
	MessageGalleryLogin   = "Please login to view the gallery."
	MessageNoHistory      = "No historical data found."
)

// PredictionReader reads the prediction history of an owner, oldest first.
type PredictionReader interface {
	ListByOwner(ctx context.Context, username string) ([]models.PredictionDB, error)
}

// HistoryService builds the per-user views over stored predictions.
type HistoryService struct {
	reader PredictionReader
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(reader PredictionReader) *HistoryService {
	return &HistoryService{reader: reader}
}

// Dashboard returns the history table of username. An empty username
// yields the login prompt.
func (s *HistoryService) Dashboard(ctx context.Context, username string) (*models.DashboardView, error) {
	if username == "" {
		return &models.DashboardView{Message: MessageDashboardLogin, Rows: []models.DashboardRow{}}, nil
	}

	records, err := s.list(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &models.DashboardView{Message: MessageNoHistory, Rows: []models.DashboardRow{}}, nil
	}

	rows := make([]models.DashboardRow, 0, len(records))
	for _, r := range records {
		c := models.Classification{Score: r.Score, Potable: r.Potable}
		rows = append(rows, models.DashboardRow{
			Timestamp:      r.CreatedAt,
			Parameters:     r.Parameters,
			Score:          r.Score,
			Potable:        r.Potable,
			Label:          c.Label(),
			Recommendation: r.Recommendation,
		})
	}

	return &models.DashboardView{Rows: rows}, nil
}

// Gallery returns one time series per feature, in feature order.
func (s *HistoryService) Gallery(ctx context.Context, username string) (*models.GalleryView, error) {
	if username == "" {
		return &models.GalleryView{Message: MessageGalleryLogin, Series: []models.FeatureSeries{}}, nil
	}

	records, err := s.list(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &models.GalleryView{Message: MessageNoHistory, Series: []models.FeatureSeries{}}, nil
	}

	series := make([]models.FeatureSeries, 0, len(models.Features))
	for _, feature := range models.Features {
		points := make([]models.SeriesPoint, 0, len(records))
		for _, r := range records {
			v, _ := r.Parameters.Value(feature)
			points = append(points, models.SeriesPoint{Timestamp: r.CreatedAt, Value: v})
		}
		series = append(series, models.FeatureSeries{
			Feature: feature,
			Title:   fmt.Sprintf("%s Over Time", feature),
			Points:  points,
		})
	}

	return &models.GalleryView{Series: series}, nil
}

func (s *HistoryService) list(ctx context.Context, username string) ([]models.PredictionDB, error) {
	records, err := s.reader.ListByOwner(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list predictions", "username", username, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return records, nil
}
