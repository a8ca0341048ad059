package services

//go:generate mockgen -source=prediction.go -destination=prediction_mock.go -package=services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-water-quality/internal/logger"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
	"github.com/segmentio/kafka-go"
)

const (
	// DefaultClassifierTimeout bounds a single classifier call.
	DefaultClassifierTimeout = 5 * time.Second
	// DefaultPublishTimeout bounds publishing one prediction event.
	DefaultPublishTimeout = 500 * time.Millisecond
)

// Classifier maps a feature vector in models.Features order to a decision.
type Classifier interface {
	Classify(ctx context.Context, features []float64) (models.Classification, error)
}

// PredictionWriter appends prediction records.
type PredictionWriter interface {
	Save(ctx context.Context, p *models.PredictionDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PredictionService validates a sample, classifies it and records the result.
type PredictionService struct {
	classifier  Classifier
	writer      PredictionWriter
	kafkaWriter    KafkaWriter
	timeout        time.Duration
	publishTimeout time.Duration
	now            func() time.Time
}

// PredictionOpt configures a PredictionService.
type PredictionOpt func(*PredictionService)

// WithKafkaWriter publishes an event for every stored prediction.
func WithKafkaWriter(w KafkaWriter) PredictionOpt {
	return func(s *PredictionService) {
		s.kafkaWriter = w
	}
}

// WithClassifierTimeout sets the classifier call timeout.
func WithClassifierTimeout(d time.Duration) PredictionOpt {
	return func(s *PredictionService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithPublishTimeout sets how long a submission waits for the event publish.
func WithPublishTimeout(d time.Duration) PredictionOpt {
	return func(s *PredictionService) {
		if d > 0 {
			s.publishTimeout = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) PredictionOpt {
	return func(s *PredictionService) {
		s.now = now
	}
}

// NewPredictionService creates a new PredictionService.
func NewPredictionService(classifier Classifier, writer PredictionWriter, opts ...PredictionOpt) *PredictionService {
	s := &PredictionService{
		classifier:     classifier,
		writer:         writer,
		timeout:        DefaultClassifierTimeout,
		publishTimeout: DefaultPublishTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs one prediction for username. Nothing is stored unless the
// sample is valid and the classifier answered.
func (s *PredictionService) Submit(ctx context.Context, username string, raw map[string]any) (*models.PredictionResult, error) {
	if username == "" {
		return nil, ErrNotAuthenticated
	}

	params, err := models.ParseParameters(raw)
	if err != nil {
		return nil, err
	}

	classification, err := s.classify(ctx, params)
	if err != nil {
		logger.Log.Errorw("failed to classify sample", "username", username, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrClassifier, err)
	}

	recommendations := models.Recommendations(params)
	record := &models.PredictionDB{
		PredictionID:   uuid.New(),
		Username:       username,
		CreatedAt:      s.now().UTC(),
		Parameters:     params,
		Score:          classification.Score,
		Potable:        classification.Potable,
		Recommendation: strings.Join(recommendations, "\n"),
	}

	if err := s.writer.Save(ctx, record); err != nil {
		logger.Log.Errorw("failed to save prediction", "username", username, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	s.publishPrediction(ctx, record)

	prediction := 0
	if classification.Potable {
		prediction = 1
	}

	return &models.PredictionResult{
		PredictionID:    record.PredictionID,
		Timestamp:       record.CreatedAt,
		Parameters:      params,
		Score:           classification.Score,
		Potable:         classification.Potable,
		Prediction:      prediction,
		Label:           classification.Label(),
		Recommendations: recommendations,
	}, nil
}

func (s *PredictionService) classify(ctx context.Context, params models.Parameters) (models.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.classifier.Classify(ctx, params.Values())
}

// publishPrediction publishes a stored prediction to Kafka. The write is
// bounded by publishTimeout and a failure never fails the submission.
func (s *PredictionService) publishPrediction(ctx context.Context, p *models.PredictionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "prediction_id", p.PredictionID)
		return
	}

	event := models.PredictionEvent{
		PredictionID: p.PredictionID.String(),
		Username:     p.Username,
		Timestamp:    p.CreatedAt.Unix(),
		Parameters:   p.Parameters,
		Score:        p.Score,
		Potable:      p.Potable,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal prediction for Kafka", "prediction_id", event.PredictionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Username),
		Value: data,
	}

	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish prediction to Kafka", "prediction_id", event.PredictionID, "error", err)
	} else {
		logger.Log.Infow("Prediction published to Kafka", "prediction_id", event.PredictionID, "potable", event.Potable)
	}
}
