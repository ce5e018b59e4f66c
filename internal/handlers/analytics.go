package handlers

import "hypertech.group/hypersystem-web/internal/config"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
}

// AnalyticsFromConfig copies the analytics ids out of cfg.
func AnalyticsFromConfig(cfg config.AnalyticsConfig) Analytics {
	return Analytics{
		GA4MeasurementID: cfg.GAMeasurementID,
		GTMContainerID:   cfg.GTMContainerID,
	}
}

// Enabled reports whether any tag should be rendered.
func (a Analytics) Enabled() bool {
	return a.GA4MeasurementID != "" || a.GTMContainerID != ""
}
