package usecase

import (
	"time"

	"TradeGate/internal/domain/models"
	"TradeGate/pkg/util"
)

// DayBuckets groups events by their UTC calendar date. Days without events
// have no map entry. FOMCDays holds the bucket dates containing at least one
// FOMC event.
type DayBuckets struct {
	Events   map[string][]models.CalendarEvent
	FOMCDays map[string]bool
}

// BucketByDay assigns events to UTC day buckets over [start, start+days).
// start must be a UTC midnight; events outside the window are ignored. The
// caller is expected to have filtered events to the relevant set already.
func BucketByDay(start time.Time, days int, events []models.CalendarEvent) *DayBuckets {
	end := start.AddDate(0, 0, days)
	b := &DayBuckets{
		Events:   make(map[string][]models.CalendarEvent),
		FOMCDays: make(map[string]bool),
	}

	for _, ev := range events {
		t := ev.Time.UTC()
		if t.Before(start) || !t.Before(end) {
			continue
		}
		key := util.DayKey(t)
		b.Events[key] = append(b.Events[key], ev)
		if IsFOMC(ev) {
			b.FOMCDays[key] = true
		}
	}
	return b
}
