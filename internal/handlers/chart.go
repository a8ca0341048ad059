package handlers

//go:generate mockgen -source=chart.go -destination=chart_mock.go -package=handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// ChartBuilder defines the interface that the service must implement.
type ChartBuilder interface {
	Chart(raw map[string]any) (*models.Chart, error)
}

// NewChartHandler returns an HTTP handler for the bar chart of one sample.
// @Summary Chart data
// @Tags reporting
// @Accept json
// @Produce json
// @Param parameters body models.Parameters true "Water sample"
// @Success 200 {object} models.Chart "Chart data"
// @Failure 400 {object} handlers.ErrorResponse "Missing or non numeric parameter"
// @Router /chart [post]
func NewChartHandler(svc ChartBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := decodeParameters(r)
		if err != nil {
			writeError(w, err)
			return
		}

		chart, err := svc.Chart(raw)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, chart)
	}
}
