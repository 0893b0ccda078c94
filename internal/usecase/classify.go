package usecase

import (
	"strings"

	"TradeGate/internal/domain/models"
)

// Pure predicates over a normalized event. All comparisons are
// case-insensitive.

// IsUSD reports whether the event is USD-denominated.
func IsUSD(ev models.CalendarEvent) bool {
	return strings.EqualFold(strings.TrimSpace(ev.Currency), "USD")
}

// IsHighImpact reports whether the provider flagged the event as top
// severity, textual or numeric.
func IsHighImpact(ev models.CalendarEvent) bool {
	impact := strings.TrimSpace(ev.Impact)
	return strings.Contains(strings.ToLower(impact), "high") || impact == "3"
}

// IsFOMC reports whether the title names a Federal Open Market Committee
// announcement. A bare "interest rate decision" only counts when the title
// also mentions the Fed.
func IsFOMC(ev models.CalendarEvent) bool {
	title := strings.ToLower(ev.Title)
	return strings.Contains(title, "fomc") ||
		strings.Contains(title, "federal open market") ||
		strings.Contains(title, "fed funds") ||
		(strings.Contains(title, "interest rate decision") && strings.Contains(title, "fed"))
}
