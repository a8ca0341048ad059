package models

import "time"

// DashboardRow is one stored prediction as shown on the dashboard.
// swagger:model DashboardRow
type DashboardRow struct {
	Timestamp  time.Time  `json:"timestamp"`
	Parameters Parameters `json:"parameters"`
	Score      float64    `json:"score"`
	Potable    bool       `json:"potable"`
	// example: Potable
	Label          string `json:"label"`
	Recommendation string `json:"recommendation"`
}

// DashboardView is the per-user history table.
// Message is set instead of rows when there is nothing to show.
// swagger:model DashboardView
type DashboardView struct {
	// example: No historical data found.
	Message string         `json:"message,omitempty"`
	Rows    []DashboardRow `json:"rows"`
}

// SeriesPoint is one value of a feature at a point in time.
type SeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// FeatureSeries is the history of a single feature.
// swagger:model FeatureSeries
type FeatureSeries struct {
	// example: pH
	Feature string `json:"feature"`
	// example: pH Over Time
	Title  string        `json:"title"`
	Points []SeriesPoint `json:"points"`
}

// GalleryView holds one time series per feature.
// swagger:model GalleryView
type GalleryView struct {
	// example: No historical data found.
	Message string          `json:"message,omitempty"`
	Series  []FeatureSeries `json:"series"`
}

// ChartBar is a single bar of the input chart.
type ChartBar struct {
	Feature string  `json:"feature"`
	Value   float64 `json:"value"`
}

// Chart is the bar chart data of a single submission.
// swagger:model Chart
type Chart struct {
	// example: Water Quality Parameters
	Title  string     `json:"title"`
	XLabel string     `json:"x_label"`
	YLabel string     `json:"y_label"`
	Bars   []ChartBar `json:"bars"`
}

// ReportLine is one parameter line of the report.
type ReportLine struct {
	Feature string  `json:"feature"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit,omitempty"`
}

// String renders the line as "Label: value unit".
func (l ReportLine) String() string {
	s := l.Label + ": " + FormatValue(l.Value)
	if l.Unit != "" {
		s += " " + l.Unit
	}
	return s
}

// Report is the content model of the water quality report document.
// swagger:model Report
type Report struct {
	// example: Water Quality Report
	Title     string       `json:"title"`
	Separator string       `json:"separator"`
	Lines     []ReportLine `json:"lines"`
	// example: Thank you for using our system!
	Footer string `json:"footer"`
}

// ReportArtifact is a rendered report, either stored remotely or inline.
type ReportArtifact struct {
	Key         string // Object key when stored
	URL         string // Download URL when stored
	Filename    string // Suggested file name
	ContentType string
	Content     []byte // Inline bytes when not stored
}
