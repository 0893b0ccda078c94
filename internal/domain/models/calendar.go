package models

import "time"

// Canonical impact tiers. Provider values outside this set pass through
// verbatim from normalization.
const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	ImpactLow    = "Low"
)

// CalendarEvent is one normalized economic-calendar event. Immutable once
// constructed by the normalizer.
type CalendarEvent struct {
	Title    string    `json:"title"`
	Currency string    `json:"currency,omitempty"`
	Impact   string    `json:"impact,omitempty"`
	Time     time.Time `json:"time"`
	Source   string    `json:"source,omitempty"`
}
