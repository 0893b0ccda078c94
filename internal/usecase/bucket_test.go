package usecase

import (
	"testing"
	"time"

	"TradeGate/internal/domain/models"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestBucketByDayGroupsByUTCDate(t *testing.T) {
	start := day(2024, 3, 1, 0)
	events := []models.CalendarEvent{
		{Title: "CPI", Currency: "USD", Impact: "High", Time: day(2024, 3, 1, 13)},
		{Title: "Retail Sales", Currency: "USD", Impact: "High", Time: day(2024, 3, 1, 15)},
		{Title: "NFP", Currency: "USD", Impact: "High", Time: day(2024, 3, 4, 13)},
	}

	b := BucketByDay(start, 7, events)

	if len(b.Events["2024-03-01"]) != 2 {
		t.Fatalf("expected 2 events on 2024-03-01, got %d", len(b.Events["2024-03-01"]))
	}
	if len(b.Events["2024-03-04"]) != 1 {
		t.Fatalf("expected 1 event on 2024-03-04, got %d", len(b.Events["2024-03-04"]))
	}
	if _, ok := b.Events["2024-03-02"]; ok {
		t.Fatalf("empty day must be absent from the map")
	}
}

func TestBucketByDayIgnoresOutOfWindow(t *testing.T) {
	start := day(2024, 3, 1, 0)
	events := []models.CalendarEvent{
		{Title: "before", Currency: "USD", Impact: "High", Time: day(2024, 2, 29, 23)},
		{Title: "after", Currency: "USD", Impact: "High", Time: day(2024, 3, 8, 0)},
		{Title: "edge", Currency: "USD", Impact: "High", Time: day(2024, 3, 7, 23)},
	}

	b := BucketByDay(start, 7, events)

	if len(b.Events) != 1 {
		t.Fatalf("expected only the in-window event, got %d buckets", len(b.Events))
	}
	if len(b.Events["2024-03-07"]) != 1 {
		t.Fatalf("expected event on 2024-03-07")
	}
}

func TestBucketByDayFOMCSet(t *testing.T) {
	start := day(2024, 3, 1, 0)
	events := []models.CalendarEvent{
		{Title: "FOMC Statement", Currency: "USD", Impact: "High", Time: day(2024, 3, 3, 18)},
		{Title: "CPI", Currency: "USD", Impact: "High", Time: day(2024, 3, 4, 13)},
	}

	b := BucketByDay(start, 7, events)

	if !b.FOMCDays["2024-03-03"] {
		t.Fatalf("expected 2024-03-03 in FOMC set")
	}
	if b.FOMCDays["2024-03-04"] {
		t.Fatalf("2024-03-04 must not be in FOMC set")
	}
}
