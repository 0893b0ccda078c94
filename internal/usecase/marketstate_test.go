package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"TradeGate/internal/domain/models"
	internalrepo "TradeGate/internal/repository"
	"TradeGate/pkg/cache"
)

func newTestStateService(secret string) (*MarketStateService, *stubMetrics) {
	m := newStubMetrics()
	store := internalrepo.NewKVStateStore(cache.NewMemoryCache())
	svc := NewMarketStateService(store, secret, m)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, m
}

func TestSaveRejectsBadSecret(t *testing.T) {
	svc, m := newTestStateService("s3cret")
	ctx := context.Background()

	// Seed an accepted record first.
	if _, err := svc.Save(ctx, &models.StateSubmission{Secret: "s3cret", State: "TREND", Volatility: "HIGH"}); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}

	_, err := svc.Save(ctx, &models.StateSubmission{Secret: "wrong", State: "RANGE"})
	if !errors.Is(err, ErrBadSecret) {
		t.Fatalf("expected ErrBadSecret, got %v", err)
	}

	// Stored record must be untouched.
	got, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got == nil || got.State != "TREND" || got.Volatility != "HIGH" {
		t.Fatalf("stored state mutated by rejected write: %+v", got)
	}
	if m.writes["unauthorized"] != 1 {
		t.Fatalf("expected unauthorized write recorded")
	}
}

func TestSaveRequiresConfiguredSecret(t *testing.T) {
	svc, _ := newTestStateService("")
	_, err := svc.Save(context.Background(), &models.StateSubmission{Secret: "anything"})
	if !errors.Is(err, ErrSecretNotConfigured) {
		t.Fatalf("expected ErrSecretNotConfigured, got %v", err)
	}
}

func TestSaveCoercesUnknownValues(t *testing.T) {
	svc, _ := newTestStateService("s3cret")

	got, err := svc.Save(context.Background(), &models.StateSubmission{
		Secret:     "s3cret",
		State:      "invalid_value",
		Volatility: "extreme",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got.State != models.RegimeUnknown {
		t.Fatalf("state = %q, want UNKNOWN", got.State)
	}
	if got.Volatility != models.VolatilityNormal {
		t.Fatalf("volatility = %q, want NORMAL", got.Volatility)
	}
	if got.Symbol != models.StateSymbol || got.Timeframe != models.StateTimeframe {
		t.Fatalf("record not stamped with fixed symbol/timeframe: %+v", got)
	}
}

func TestSaveDefaultsTimestampAndFiltersTypes(t *testing.T) {
	svc, _ := newTestStateService("s3cret")

	got, err := svc.Save(context.Background(), &models.StateSubmission{
		Secret: "s3cret",
		State:  "RANGE",
		Score:  0.73,
		Note:   "london open chop",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got.Timestamp != time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli() {
		t.Fatalf("timestamp not defaulted to now: %d", got.Timestamp)
	}
	if got.Score == nil || *got.Score != 0.73 {
		t.Fatalf("score not kept: %+v", got.Score)
	}
	if got.Note == nil || *got.Note != "london open chop" {
		t.Fatalf("note not kept: %+v", got.Note)
	}

	// Wrong-typed score and note are omitted, not rejected.
	got, err = svc.Save(context.Background(), &models.StateSubmission{
		Secret: "s3cret",
		State:  "TREND",
		Score:  "not a number",
		Note:   42.0,
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got.Score != nil || got.Note != nil {
		t.Fatalf("wrong-typed score/note must be omitted: %+v", got)
	}
}

func TestLastWriteWins(t *testing.T) {
	svc, _ := newTestStateService("s3cret")
	ctx := context.Background()

	if _, err := svc.Save(ctx, &models.StateSubmission{Secret: "s3cret", State: "RANGE", Timestamp: 100}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := svc.Save(ctx, &models.StateSubmission{Secret: "s3cret", State: "TREND", Timestamp: 50}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.State != "TREND" || got.Timestamp != 50 {
		t.Fatalf("expected the later write to win regardless of timestamp: %+v", got)
	}
}

func TestLoadNeverWritten(t *testing.T) {
	svc, _ := newTestStateService("s3cret")
	got, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil record, got %+v", got)
	}
}
