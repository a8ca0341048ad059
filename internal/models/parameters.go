package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Feature names, as accepted on input and expected by the classifier.
const (
	FeaturePH              = "pH"
	FeatureHardness        = "Hardness"
	FeatureSolids          = "Solids"
	FeatureChloramines     = "Chloramines"
	FeatureSulfate         = "Sulfate"
	FeatureConductivity    = "Conductivity"
	FeatureOrganicCarbon   = "Organic_carbon"
	FeatureTrihalomethanes = "Trihalomethanes"
	FeatureTurbidity       = "Turbidity"
)

// Features lists the recognised features in classifier order.
var Features = []string{
	FeaturePH,
	FeatureHardness,
	FeatureSolids,
	FeatureChloramines,
	FeatureSulfate,
	FeatureConductivity,
	FeatureOrganicCarbon,
	FeatureTrihalomethanes,
	FeatureTurbidity,
}

// Parameters is one water sample: a value for each of the nine features.
// swagger:model Parameters
type Parameters struct {
	PH              float64 `json:"pH" db:"ph" example:"7.0"`
	Hardness        float64 `json:"Hardness" db:"hardness" example:"150"`
	Solids          float64 `json:"Solids" db:"solids" example:"500"`
	Chloramines     float64 `json:"Chloramines" db:"chloramines" example:"4"`
	Sulfate         float64 `json:"Sulfate" db:"sulfate" example:"250"`
	Conductivity    float64 `json:"Conductivity" db:"conductivity" example:"500"`
	OrganicCarbon   float64 `json:"Organic_carbon" db:"organic_carbon" example:"2"`
	Trihalomethanes float64 `json:"Trihalomethanes" db:"trihalomethanes" example:"80"`
	Turbidity       float64 `json:"Turbidity" db:"turbidity" example:"1"`
}

func (p *Parameters) field(feature string) *float64 {
	switch feature {
	case FeaturePH:
		return &p.PH
	case FeatureHardness:
		return &p.Hardness
	case FeatureSolids:
		return &p.Solids
	case FeatureChloramines:
		return &p.Chloramines
	case FeatureSulfate:
		return &p.Sulfate
	case FeatureConductivity:
		return &p.Conductivity
	case FeatureOrganicCarbon:
		return &p.OrganicCarbon
	case FeatureTrihalomethanes:
		return &p.Trihalomethanes
	case FeatureTurbidity:
		return &p.Turbidity
	}
	return nil
}

// Value returns the value of a feature; ok is false for unknown names.
func (p Parameters) Value(feature string) (float64, bool) {
	f := p.field(feature)
	if f == nil {
		return 0, false
	}
	return *f, true
}

// Values returns the feature vector in classifier order.
func (p Parameters) Values() []float64 {
	values := make([]float64, 0, len(Features))
	for _, feature := range Features {
		v, _ := p.Value(feature)
		values = append(values, v)
	}
	return values
}

// DefaultParameters returns the reference sample used to pre-fill inputs.
func DefaultParameters() Parameters {
	var p Parameters
	for _, s := range standards {
		*p.field(s.Feature) = s.Default
	}
	return p
}

// ParseParameters builds Parameters from a decoded JSON object.
// Every feature must be present and hold a finite number; unknown keys are ignored.
// Values outside the standard ranges are accepted.
func ParseParameters(raw map[string]any) (Parameters, error) {
	var p Parameters
	for _, feature := range Features {
		v, ok := raw[feature]
		if !ok || v == nil {
			return Parameters{}, fmt.Errorf("%w: %s is missing", ErrInvalidParameters, feature)
		}
		f, ok := toFloat(v)
		if !ok {
			return Parameters{}, fmt.Errorf("%w: %s is not a number", ErrInvalidParameters, feature)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Parameters{}, fmt.Errorf("%w: %s is not finite", ErrInvalidParameters, feature)
		}
		*p.field(feature) = f
	}
	return p, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
