package models

import (
	"time"

	"github.com/google/uuid"
)

// Potability labels
const (
	LabelPotable    = "Potable"
	LabelNotPotable = "Not Potable"
)

// Classification is the classifier output for one sample.
type Classification struct {
	Score   float64 // Continuous potability signal in [0, 1]
	Potable bool    // Binary decision
}

// Label returns the human readable class.
func (c Classification) Label() string {
	if c.Potable {
		return LabelPotable
	}
	return LabelNotPotable
}

// PredictionDB represents a stored prediction record
type PredictionDB struct {
	Seq          int64     `json:"-" db:"seq"`                       // Insertion sequence
	PredictionID uuid.UUID `json:"prediction_id" db:"prediction_id"` // Unique record identifier
	Username     string    `json:"username" db:"username"`           // Owner of the record
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Submission time

	// Submitted sample
	Parameters
	Score          float64 `json:"score" db:"score"`                   // Classifier score
	Potable        bool    `json:"potable" db:"potable"`               // Classifier decision
	Recommendation string  `json:"recommendation" db:"recommendation"` // Advice derived from standards
}

// PredictionResult represents a successful prediction response
// swagger:model PredictionResult
type PredictionResult struct {
	// Stored record identifier
	PredictionID uuid.UUID `json:"prediction_id"`
	// Submission time
	Timestamp time.Time `json:"timestamp"`
	// Submitted sample
	Parameters Parameters `json:"parameters"`
	// Potability score
	// example: 0.78
	Score float64 `json:"score"`
	// Binary decision
	Potable bool `json:"potable"`
	// Prediction (0: Not Potable, 1: Potable)
	// example: 1
	Prediction int `json:"prediction"`
	// Human readable class
	// example: Potable
	Label string `json:"label"`
	// Features outside the standard ranges
	Recommendations []string `json:"recommendations"`
}

// PredictionEvent is published after a prediction has been stored.
type PredictionEvent struct {
	PredictionID string     `json:"prediction_id"` // Stored record identifier
	Username     string     `json:"username"`      // Owner of the record
	Timestamp    int64      `json:"timestamp"`     // Unix seconds of the submission
	Parameters   Parameters `json:"parameters"`    // Submitted sample
	Score        float64    `json:"score"`         // Classifier score
	Potable      bool       `json:"potable"`       // Classifier decision
}
