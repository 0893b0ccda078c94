package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"TradeGate/internal/domain/models"
	"TradeGate/internal/domain/repository"
)

var (
	// ErrSecretNotConfigured means the server has no webhook secret; reported
	// as a server error, never as a client failure.
	ErrSecretNotConfigured = errors.New("webhook secret not configured")
	// ErrBadSecret means the submitted secret does not match.
	ErrBadSecret = errors.New("invalid webhook secret")
)

// MarketStateService validates and persists the externally-pushed market
// state. Writes are last-write-wins over a single stored record; reads are
// unauthenticated by design.
type MarketStateService struct {
	store   repository.StateStore
	secret  string
	metrics repository.Metrics
	now     func() time.Time
}

// NewMarketStateService creates the accessor with the configured shared secret.
func NewMarketStateService(store repository.StateStore, secret string, metrics repository.Metrics) *MarketStateService {
	return &MarketStateService{store: store, secret: secret, metrics: metrics, now: time.Now}
}

// Save authorizes and coerces a submission, then overwrites the stored
// record. Nothing is mutated when authorization fails.
func (s *MarketStateService) Save(ctx context.Context, sub *models.StateSubmission) (*models.MarketState, error) {
	if s.secret == "" {
		s.metrics.RecordStateWrite("rejected")
		return nil, ErrSecretNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(sub.Secret), []byte(s.secret)) != 1 {
		s.metrics.RecordStateWrite("unauthorized")
		return nil, ErrBadSecret
	}

	state := &models.MarketState{
		Symbol:     models.StateSymbol,
		Timeframe:  models.StateTimeframe,
		State:      coerceRegime(sub.State),
		Volatility: coerceVolatility(sub.Volatility),
		Timestamp:  sub.Timestamp,
	}
	if state.Timestamp <= 0 {
		state.Timestamp = s.now().UnixMilli()
	}
	if score, ok := sub.Score.(float64); ok {
		state.Score = &score
	}
	if note, ok := sub.Note.(string); ok {
		state.Note = &note
	}

	if err := s.store.Set(ctx, state); err != nil {
		s.metrics.RecordStateWrite("rejected")
		return nil, err
	}
	s.metrics.RecordStateWrite("saved")
	return state, nil
}

// Load returns the current record or nil if never written.
func (s *MarketStateService) Load(ctx context.Context) (*models.MarketState, error) {
	return s.store.Get(ctx)
}

func coerceRegime(v string) string {
	switch v {
	case models.RegimeRange, models.RegimeTrend, models.RegimeUnknown:
		return v
	}
	return models.RegimeUnknown
}

func coerceVolatility(v string) string {
	switch v {
	case models.VolatilityLow, models.VolatilityNormal, models.VolatilityHigh:
		return v
	}
	return models.VolatilityNormal
}
