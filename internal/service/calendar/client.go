package calendar

import (
	"context"
	"fmt"
	"time"

	"TradeGate/internal/domain/models"
	"TradeGate/internal/domain/repository"
	xhttp "TradeGate/pkg/http"
)

// SourceTag identifies events produced by this provider integration.
const SourceTag = "ff-weekly"

// WeeklyClient implements CalendarSource against a this-week JSON feed of
// loosely-structured economic-event records.
type WeeklyClient struct {
	http       *xhttp.Client
	feedURL    string
	apiKey     string
	normalizer *Normalizer
}

// NewWeeklyClient creates a weekly-feed calendar source.
func NewWeeklyClient(feedURL, apiKey string, timeout time.Duration, metrics repository.Metrics) *WeeklyClient {
	return &WeeklyClient{
		http:       xhttp.NewClient(xhttp.WithTimeout(timeout)),
		feedURL:    feedURL,
		apiKey:     apiKey,
		normalizer: NewNormalizer(SourceTag, metrics),
	}
}

// FetchWindow fetches the feed snapshot and returns normalized events whose
// instant falls within [from, to). A failed fetch fails the whole call; there
// is no retry and no partial result.
func (c *WeeklyClient) FetchWindow(ctx context.Context, from, to time.Time) ([]models.CalendarEvent, error) {
	opts := &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.feedURL,
	}
	if c.apiKey != "" {
		opts.QueryParams = map[string][]string{"apikey": {c.apiKey}}
	}

	var raw []map[string]interface{}
	if err := c.http.SendAndParse(ctx, opts, &raw); err != nil {
		return nil, fmt.Errorf("calendar feed: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(raw))
	for _, record := range raw {
		ev := c.normalizer.Normalize(record)
		if ev.Time.Before(from) || !ev.Time.Before(to) {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}
