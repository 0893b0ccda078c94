package repository

import (
	"context"
	"errors"

	"TradeGate/internal/domain/models"
	"TradeGate/pkg/cache"
)

// stateKey is the single well-known key the market-state record lives under.
const stateKey = "market-state:latest"

// KVStateStore persists the market-state record in a key-value store. The
// record never expires and is overwritten wholesale on each write.
type KVStateStore struct {
	kv cache.Service
}

// NewKVStateStore creates a store over the given key-value backend.
func NewKVStateStore(kv cache.Service) *KVStateStore {
	return &KVStateStore{kv: kv}
}

// Get returns the current record, or (nil, nil) if never written.
func (s *KVStateStore) Get(ctx context.Context) (*models.MarketState, error) {
	var state models.MarketState
	if err := s.kv.Get(ctx, stateKey, &state); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

// Set overwrites the record, last write wins.
func (s *KVStateStore) Set(ctx context.Context, state *models.MarketState) error {
	return s.kv.Set(ctx, stateKey, state, 0)
}
