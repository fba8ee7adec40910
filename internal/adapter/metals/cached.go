package metals

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

const quoteCacheKey = "metals:xau_inr"

// QuoteCache is the subset of the L1 cache the cached source needs.
type QuoteCache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Source produces spot quotes. *Client implements it; tests substitute fakes.
type Source interface {
	SpotINR(ctx context.Context) (Quote, error)
}

// CachedSource serves quotes from an L1 cache within a freshness window and
// falls through to the underlying source on a miss.
type CachedSource struct {
	src   Source
	cache QuoteCache
	ttl   time.Duration
}

var _ Source = (*CachedSource)(nil)

// NewCachedSource wraps src with cache lookups at the given TTL.
func NewCachedSource(src Source, cache QuoteCache, ttl time.Duration) *CachedSource {
	return &CachedSource{src: src, cache: cache, ttl: ttl}
}

// SpotINR returns a cached quote when one is fresh, otherwise fetches and
// caches a new one. Cache failures are logged and bypassed, never fatal.
func (s *CachedSource) SpotINR(ctx context.Context) (Quote, error) {
	if data, ok, err := s.cache.Get(ctx, quoteCacheKey); err == nil && ok {
		var q Quote
		if err := json.Unmarshal(data, &q); err == nil {
			return q, nil
		}
		slog.Warn("metals: discarding undecodable cached quote")
	}

	q, err := s.src.SpotINR(ctx)
	if err != nil {
		return Quote{}, err
	}

	if data, err := json.Marshal(q); err == nil {
		if err := s.cache.Set(ctx, quoteCacheKey, data, s.ttl); err != nil {
			slog.Warn("metals: quote cache write failed", "error", err)
		}
	}
	return q, nil
}
