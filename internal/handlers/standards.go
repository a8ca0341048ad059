package handlers

//go:generate mockgen -source=standards.go -destination=standards_mock.go -package=handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// StandardsReader defines the interface that the service must implement.
type StandardsReader interface {
	Standards() []models.Standard
	Defaults() models.Parameters
}

// InputBound is the advisory input range of a parameter.
// swagger:model InputBound
type InputBound struct {
	// default: pH
	Feature string  `json:"feature"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// DefaultsResponse holds the reference sample and the advisory input ranges
// swagger:model DefaultsResponse
type DefaultsResponse struct {
	Parameters models.Parameters `json:"parameters"`
	Bounds     []InputBound      `json:"bounds"`
}

// NewStandardsHandler returns an HTTP handler for the standards table.
// @Summary Water quality standards
// @Tags reporting
// @Produce json
// @Success 200 {array} models.Standard "Standards"
// @Router /standards [get]
func NewStandardsHandler(svc StandardsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Standards())
	}
}

// NewDefaultsHandler returns an HTTP handler for the input defaults.
// @Summary Default parameters
// @Description Reference sample and advisory input ranges. Ranges are never used to reject input.
// @Tags reporting
// @Produce json
// @Success 200 {object} handlers.DefaultsResponse "Defaults"
// @Router /defaults [get]
func NewDefaultsHandler(svc StandardsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standards := svc.Standards()
		bounds := make([]InputBound, 0, len(standards))
		for _, s := range standards {
			bounds = append(bounds, InputBound{Feature: s.Feature, Min: s.InputMin, Max: s.InputMax})
		}

		writeJSON(w, http.StatusOK, DefaultsResponse{
			Parameters: svc.Defaults(),
			Bounds:     bounds,
		})
	}
}
