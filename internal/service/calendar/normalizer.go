package calendar

import (
	"strconv"
	"strings"
	"time"

	"TradeGate/internal/domain/models"
	"TradeGate/internal/domain/repository"
	"TradeGate/pkg/util"
)

// Candidate field names per attribute, probed in priority order. Providers
// rename fields freely, so normalization is table-driven rather than schema
// bound.
var (
	titleFields    = []string{"title", "event", "name"}
	currencyFields = []string{"currency", "country", "ccy"}
	impactFields   = []string{"impact", "importance", "severity"}
	timeFields     = []string{"date", "datetime", "time", "timestamp"}
)

const fallbackTitle = "Economic event"

// Normalizer maps one raw provider record into a CalendarEvent.
type Normalizer struct {
	source  string
	metrics repository.Metrics
	now     func() time.Time
}

// NewNormalizer creates a normalizer tagging events with the given source.
func NewNormalizer(source string, metrics repository.Metrics) *Normalizer {
	return &Normalizer{source: source, metrics: metrics, now: time.Now}
}

// Normalize builds a CalendarEvent from an untyped provider record. A record
// with no parseable date/time gets the current instant instead of failing the
// batch; the fallback is counted so feed quality stays observable.
func (n *Normalizer) Normalize(raw map[string]interface{}) models.CalendarEvent {
	ev := models.CalendarEvent{
		Title:  fallbackTitle,
		Source: n.source,
	}

	if title := firstString(raw, titleFields); title != "" {
		ev.Title = title
	}
	if ccy := firstString(raw, currencyFields); ccy != "" {
		ev.Currency = strings.ToUpper(strings.TrimSpace(ccy))
	}
	ev.Impact = NormalizeImpact(firstString(raw, impactFields))

	if t, ok := firstTime(raw, timeFields); ok {
		ev.Time = t
	} else {
		ev.Time = n.now().UTC()
		if n.metrics != nil {
			n.metrics.RecordTimestampFallback(n.source)
		}
	}

	return ev
}

// NormalizeImpact maps provider impact encodings to the canonical tiers.
// Numeric severities follow the 3-is-highest provider convention. Unknown
// values pass through verbatim.
func NormalizeImpact(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	switch strings.ToLower(s) {
	case "high", "3":
		return models.ImpactHigh
	case "medium", "med", "2":
		return models.ImpactMedium
	case "low", "1":
		return models.ImpactLow
	}
	return s
}

// firstString returns the first present, non-empty candidate field rendered
// as a string.
func firstString(raw map[string]interface{}, keys []string) string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if strings.TrimSpace(t) != "" {
				return t
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case int:
			return strconv.Itoa(t)
		}
	}
	return ""
}

// firstTime returns the first candidate field that parses as a timestamp.
func firstTime(raw map[string]interface{}, keys []string) (time.Time, bool) {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if parsed, ok := util.ParseTime(t); ok {
				return parsed, true
			}
		case float64:
			if t <= 0 {
				continue
			}
			// 13+ digit values are epoch milliseconds
			if t >= 1e12 {
				return time.UnixMilli(int64(t)).UTC(), true
			}
			return time.Unix(int64(t), 0).UTC(), true
		}
	}
	return time.Time{}, false
}
