package handlers

import (
	"regexp"

	"seothon.dev/web/internal/config"
)

var measurementIDPattern = regexp.MustCompile(`^G-[A-Z0-9]{4,20}$`)

// Analytics holds client instrumentation configuration surfaced to the layout.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
}

// AnalyticsFromConfig keeps the measurement id only when it is well formed, since it
// ends up inside an inline script.
func AnalyticsFromConfig(cfg config.AnalyticsConfig) Analytics {
	if !measurementIDPattern.MatchString(cfg.GA4MeasurementID) {
		return Analytics{}
	}
	return Analytics{GA4MeasurementID: cfg.GA4MeasurementID}
}

// Enabled reports whether the GA4 snippet should be rendered.
func (a Analytics) Enabled() bool { return a.GA4MeasurementID != "" }
