package models

import (
	"fmt"
	"math"
	"strconv"
)

// Standard is one row of the water quality standards table.
// swagger:model Standard
type Standard struct {
	// Feature name as used in Parameters
	Feature string `json:"feature" example:"pH"`
	// Human readable parameter name
	Parameter string `json:"parameter" example:"pH"`
	// Unit of measurement
	Unit string `json:"unit,omitempty" example:""`
	// Acceptable range
	StandardValue string `json:"standard_value" example:"6.5 - 8.5"`

	// Advisory input bounds
	InputMin float64 `json:"input_min" example:"0"`
	InputMax float64 `json:"input_max" example:"14"`
	// Reference value used to pre-fill inputs
	Default float64 `json:"default" example:"7.5"`

	min, max     float64
	maxExclusive bool
}

// Within reports whether v satisfies the standard.
func (s Standard) Within(v float64) bool {
	if v < s.min {
		return false
	}
	if s.maxExclusive {
		return v < s.max
	}
	return v <= s.max
}

var standards = []Standard{
	{Feature: FeaturePH, Parameter: "pH", StandardValue: "6.5 - 8.5",
		InputMin: 0, InputMax: 14, Default: 7.5, min: 6.5, max: 8.5},
	{Feature: FeatureHardness, Parameter: "Hardness", Unit: "mg/L", StandardValue: "0 - 300 mg/L",
		InputMin: 0, InputMax: 500, Default: 150, min: 0, max: 300},
	{Feature: FeatureSolids, Parameter: "Solids", Unit: "mg/L", StandardValue: "< 500 mg/L",
		InputMin: 0, InputMax: 50000, Default: 500, min: 0, max: 500, maxExclusive: true},
	{Feature: FeatureChloramines, Parameter: "Chloramines", Unit: "mg/L", StandardValue: "< 4 mg/L",
		InputMin: 0, InputMax: 10, Default: 4, min: 0, max: 4, maxExclusive: true},
	{Feature: FeatureSulfate, Parameter: "Sulfate", Unit: "mg/L", StandardValue: "< 250 mg/L",
		InputMin: 0, InputMax: 500, Default: 250, min: 0, max: 250, maxExclusive: true},
	{Feature: FeatureConductivity, Parameter: "Conductivity", Unit: "µS/cm", StandardValue: "50 - 500 µS/cm",
		InputMin: 0, InputMax: 2000, Default: 500, min: 50, max: 500},
	{Feature: FeatureOrganicCarbon, Parameter: "Organic Carbon", Unit: "mg/L", StandardValue: "< 2 mg/L",
		InputMin: 0, InputMax: 50, Default: 2, min: 0, max: 2, maxExclusive: true},
	{Feature: FeatureTrihalomethanes, Parameter: "Trihalomethanes", Unit: "µg/L", StandardValue: "< 80 µg/L",
		InputMin: 0, InputMax: 150, Default: 80, min: 0, max: 80, maxExclusive: true},
	{Feature: FeatureTurbidity, Parameter: "Turbidity", Unit: "NTU", StandardValue: "< 1 NTU",
		InputMin: 0, InputMax: 10, Default: 1, min: 0, max: 1, maxExclusive: true},
}

// Standards returns a copy of the standards table in feature order.
func Standards() []Standard {
	out := make([]Standard, len(standards))
	copy(out, standards)
	return out
}

// StandardFor returns the standard of a feature.
func StandardFor(feature string) (Standard, bool) {
	for _, s := range standards {
		if s.Feature == feature {
			return s, true
		}
	}
	return Standard{}, false
}

// AllWithinStandards is the recommendation given when nothing is out of range.
const AllWithinStandards = "All parameters are within standard ranges."

// Recommendations lists every feature of p that falls outside its standard.
func Recommendations(p Parameters) []string {
	var recs []string
	for _, s := range standards {
		v, _ := p.Value(s.Feature)
		if s.Within(v) {
			continue
		}
		recs = append(recs, fmt.Sprintf("%s is %s, recommended %s", s.Parameter, FormatValue(v), s.StandardValue))
	}
	if len(recs) == 0 {
		return []string{AllWithinStandards}
	}
	return recs
}

// FormatValue prints a measurement with the shortest exact form, keeping
// one decimal for whole numbers (7 -> "7.0").
func FormatValue(v float64) string {
	if math.Trunc(v) == v && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
