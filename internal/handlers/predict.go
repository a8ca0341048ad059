package handlers

//go:generate mockgen -source=predict.go -destination=predict_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/middlewares"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// Predictor defines the interface that the service must implement.
type Predictor interface {
	Submit(ctx context.Context, username string, raw map[string]any) (*models.PredictionResult, error)
}

// NewPredictHandler returns an HTTP handler that classifies a water sample
// and stores the result in the caller's history.
// @Summary Predict potability
// @Description Classifies the nine water parameters. Values outside the standards are accepted and reported as recommendations.
// @Tags prediction
// @Accept json
// @Produce json
// @Param parameters body models.Parameters true "Water sample"
// @Success 200 {object} models.PredictionResult "Prediction"
// @Failure 400 {object} handlers.ErrorResponse "Missing or non numeric parameter"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 502 {object} handlers.ErrorResponse "Classifier error"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /predict [post]
// @Security BearerAuth
func NewPredictHandler(svc Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw, err := decodeParameters(r)
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := svc.Submit(ctx, middlewares.GetUsernameFromContext(ctx), raw)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
