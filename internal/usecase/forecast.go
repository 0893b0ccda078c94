package usecase

import (
	"context"
	"sort"
	"time"

	"TradeGate/internal/domain/models"
	"TradeGate/internal/domain/repository"
	xhttp "TradeGate/pkg/http"
	"TradeGate/pkg/util"
)

// forecastDays is the fixed display window.
const forecastDays = 7

// Planner computes the 7-day readiness forecast. Each call performs its own
// fetch-compute cycle; nothing is shared or cached between requests.
type Planner struct {
	source  repository.CalendarSource
	metrics repository.Metrics
	now     func() time.Time
}

// NewPlanner creates a forecast planner.
func NewPlanner(source repository.CalendarSource, metrics repository.Metrics) *Planner {
	return &Planner{source: source, metrics: metrics, now: time.Now}
}

// Plan fetches the calendar window starting at the current UTC midnight and
// assembles one forecast per day. A fetch failure aborts the whole plan.
//
// The fetch window equals the display window, so a day whose FOMC-triggering
// predecessor falls before the window start reads as not day-after-FOMC.
func (p *Planner) Plan(ctx context.Context) ([]models.DayForecast, error) {
	started := p.now()
	start := util.StartOfDayUTC(started)
	end := start.AddDate(0, 0, forecastDays)

	events, err := p.source.FetchWindow(ctx, start, end)
	if err != nil {
		p.metrics.RecordFetchError()
		p.metrics.RecordForecastRequest("error")
		return nil, xhttp.UpstreamError("calendar fetch failed").WithError(err)
	}

	relevant := make([]models.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if IsUSD(ev) && IsHighImpact(ev) {
			relevant = append(relevant, ev)
		}
	}

	buckets := BucketByDay(start, forecastDays, relevant)

	days := make([]models.DayForecast, 0, forecastDays)
	for i := 0; i < forecastDays; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, p.assembleDay(date, buckets))
	}

	p.metrics.RecordForecastRequest("ok")
	p.metrics.RecordLatency("forecast", time.Since(started).Seconds())
	return days, nil
}

func (p *Planner) assembleDay(date time.Time, buckets *DayBuckets) models.DayForecast {
	key := util.DayKey(date)
	weekday := date.Weekday().String()

	events := append([]models.CalendarEvent(nil), buckets.Events[key]...)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	if events == nil {
		events = []models.CalendarEvent{}
	}

	flags := models.DayFlags{
		IsFriday:         weekday == "Friday",
		HasHighImpactUSD: len(events) > 0,
		IsFOMCDay:        buckets.FOMCDays[key],
		IsDayAfterFOMC:   buckets.FOMCDays[util.DayKey(date.AddDate(0, 0, -1))],
	}

	reasons := []string{}
	if flags.IsFriday {
		reasons = appendUnique(reasons, models.ReasonFriday)
	}
	if flags.IsFOMCDay {
		reasons = appendUnique(reasons, models.ReasonFOMCDay)
	}
	if flags.IsDayAfterFOMC {
		reasons = appendUnique(reasons, models.ReasonDayAfterFOMC)
	}
	if flags.HasHighImpactUSD {
		reasons = appendUnique(reasons, models.ReasonHighImpactUSD)
	}

	status := models.StatusGood
	if flags.Any() {
		status = models.StatusNoRun
	}

	return models.DayForecast{
		Date:    key,
		Weekday: weekday,
		Status:  status,
		Reasons: reasons,
		Events:  events,
		Flags:   flags,
	}
}

// appendUnique preserves order and drops duplicates.
func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
