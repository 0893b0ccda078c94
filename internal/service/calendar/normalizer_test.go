package calendar

import (
	"testing"
	"time"
)

type countingMetrics struct {
	fallbacks int
}

func (m *countingMetrics) RecordForecastRequest(string)   {}
func (m *countingMetrics) RecordFetchError()              {}
func (m *countingMetrics) RecordTimestampFallback(string) { m.fallbacks++ }
func (m *countingMetrics) RecordStateWrite(string)        {}
func (m *countingMetrics) RecordLatency(string, float64)  {}

func TestNormalizeImpact(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"3", "High"},
		{"High", "High"},
		{"high", "High"},
		{"2", "Medium"},
		{"med", "Medium"},
		{"MEDIUM", "Medium"},
		{"1", "Low"},
		{"low", "Low"},
		{"Holiday", "Holiday"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeImpact(tc.in); got != tc.want {
			t.Fatalf("NormalizeImpact(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeCandidateFields(t *testing.T) {
	n := NewNormalizer("test-feed", nil)

	ev := n.Normalize(map[string]interface{}{
		"event":   "Core CPI m/m",
		"country": " usd ",
		"impact":  "High",
		"date":    "2024-03-01T13:30:00Z",
	})

	if ev.Title != "Core CPI m/m" {
		t.Fatalf("title fallback chain broken: %q", ev.Title)
	}
	if ev.Currency != "USD" {
		t.Fatalf("currency not uppercased/trimmed: %q", ev.Currency)
	}
	if ev.Impact != "High" {
		t.Fatalf("impact = %q", ev.Impact)
	}
	if !ev.Time.Equal(time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC)) {
		t.Fatalf("time = %v", ev.Time)
	}
	if ev.Source != "test-feed" {
		t.Fatalf("source tag = %q", ev.Source)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	n := NewNormalizer("test-feed", nil)

	ev := n.Normalize(map[string]interface{}{})
	if ev.Title != "Economic event" {
		t.Fatalf("expected placeholder title, got %q", ev.Title)
	}
	if ev.Currency != "" || ev.Impact != "" {
		t.Fatalf("expected absent currency and impact: %+v", ev)
	}
}

func TestNormalizeNumericTimestamp(t *testing.T) {
	n := NewNormalizer("test-feed", nil)
	want := time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC)

	ev := n.Normalize(map[string]interface{}{
		"title":     "NFP",
		"timestamp": float64(want.Unix()),
	})
	if !ev.Time.Equal(want) {
		t.Fatalf("unix seconds not parsed: %v", ev.Time)
	}

	ev = n.Normalize(map[string]interface{}{
		"title":     "NFP",
		"timestamp": float64(want.UnixMilli()),
	})
	if !ev.Time.Equal(want) {
		t.Fatalf("unix millis not parsed: %v", ev.Time)
	}
}

func TestNormalizeTimestampFallback(t *testing.T) {
	m := &countingMetrics{}
	n := NewNormalizer("test-feed", m)
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return fixed }

	ev := n.Normalize(map[string]interface{}{
		"title": "Mystery release",
		"date":  "not a date",
	})
	if !ev.Time.Equal(fixed) {
		t.Fatalf("expected fallback to now, got %v", ev.Time)
	}
	if m.fallbacks != 1 {
		t.Fatalf("fallback not counted: %d", m.fallbacks)
	}
}
