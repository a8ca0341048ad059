// Package classifier contains the in-process potability model used when no
// remote classifier is configured.
package classifier

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// DefaultThreshold is the score at which a sample is considered potable.
const DefaultThreshold = 0.5

// Baseline scores a sample by the share of features within their standard.
type Baseline struct {
	threshold float64
}

// NewBaseline creates a baseline model. A non-positive threshold
// falls back to DefaultThreshold.
func NewBaseline(threshold float64) *Baseline {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Baseline{threshold: threshold}
}

// Classify expects features in models.Features order.
func (b *Baseline) Classify(ctx context.Context, features []float64) (models.Classification, error) {
	if err := ctx.Err(); err != nil {
		return models.Classification{}, err
	}
	if len(features) != len(models.Features) {
		return models.Classification{}, fmt.Errorf("expected %d features, got %d", len(models.Features), len(features))
	}

	within := 0
	for i, feature := range models.Features {
		s, _ := models.StandardFor(feature)
		if s.Within(features[i]) {
			within++
		}
	}

	score := float64(within) / float64(len(features))
	return models.Classification{Score: score, Potable: score >= b.threshold}, nil
}
