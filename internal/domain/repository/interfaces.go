package repository

import (
	"context"
	"time"

	"TradeGate/internal/domain/models"
)

// CalendarSource fetches economic-calendar events overlapping [from, to).
// Records the provider could not date at all are dropped upstream; everything
// else arrives normalized.
type CalendarSource interface {
	FetchWindow(ctx context.Context, from, to time.Time) ([]models.CalendarEvent, error)
}

// StateStore persists the single market-state record under a fixed key.
// Get returns (nil, nil) when the record has never been written.
type StateStore interface {
	Get(ctx context.Context) (*models.MarketState, error)
	Set(ctx context.Context, state *models.MarketState) error
}

// Metrics abstracts observability counters recorded by the pipeline.
type Metrics interface {
	RecordForecastRequest(outcome string)
	RecordFetchError()
	RecordTimestampFallback(source string)
	RecordStateWrite(result string)
	RecordLatency(op string, seconds float64)
}
