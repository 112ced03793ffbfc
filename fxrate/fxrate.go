// Package fxrate fetches and caches foreign-exchange rates.
//
// One upstream fetch retrieves the full rate table for a base currency; the
// whole table is cached and served for the validity window. The cache lives
// in process memory only: a fresh process starts empty and refetches.
package fxrate

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"github.com/bluez/tripwise/logger"
)

// Validity is how long a fetched rate table stays fresh.
const Validity = time.Hour

// ErrConversionFailed reports that the upstream rate fetch failed (network
// or decode). Any previously cached table for the base stays untouched.
var ErrConversionFailed = errors.New("conversion failed")

// ErrRateUnavailable reports that a fresh rate table does not carry the
// requested target currency. That is the provider's gap, not a cache fault,
// and retrying within the validity window will not help.
var ErrRateUnavailable = errors.New("no rate available")

// Provider fetches the full rate table for a base currency from upstream.
// Implementations must normalize whatever response shape the upstream uses
// into a plain target->rate mapping.
type Provider interface {
	FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// Converter is the conversion surface expense recording depends on.
type Converter interface {
	GetRate(ctx context.Context, base, target string) (decimal.Decimal, error)
	Convert(ctx context.Context, amount decimal.Decimal, base, target string) (decimal.Decimal, error)
}

// entry is one cached rate table with its fetch time.
type entry struct {
	rates     map[string]decimal.Decimal
	fetchedAt time.Time
}

// Cache is a TTL cache of rate tables keyed by base currency.
//
// Concurrent lookups for different bases are independent; concurrent
// refreshes of the same base race and the last successful fetch wins, which
// is acceptable because every fetch returns an equally fresh table.
type Cache struct {
	provider Provider
	entries  *gocache.Cache
	validity time.Duration
	now      func() time.Time
}

// Option customizes a Cache.
type Option func(*Cache)

// WithValidity overrides the freshness window.
func WithValidity(d time.Duration) Option {
	return func(c *Cache) { c.validity = d }
}

// WithClock overrides the time source, for freshness tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// NewCache returns an empty rate cache on top of the given provider.
func NewCache(provider Provider, opts ...Option) *Cache {
	c := &Cache{
		provider: provider,
		validity: Validity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	// go-cache provides the thread-safe store and janitor; freshness is
	// checked against c.now so tests can drive the clock.
	c.entries = gocache.New(gocache.NoExpiration, 2*c.validity)
	return c
}

// GetRate returns the base->target rate, fetching the base's rate table from
// the provider on a cache miss or a stale entry. A fresh cached table is
// served with no upstream call.
func (c *Cache) GetRate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	if e, ok := c.fresh(base); ok {
		return e.rate(base, target)
	}

	rates, err := c.provider.FetchRates(ctx, base)
	if err != nil {
		// The previous entry, fresh or stale, stays as it was.
		return decimal.Zero, fmt.Errorf("%w: fetching rates for %s: %v", ErrConversionFailed, base, err)
	}
	e := entry{rates: rates, fetchedAt: c.now()}
	c.entries.Set(base, e, gocache.NoExpiration)
	logger.L.Debug("refreshed rate table", "base", base, "targets", len(rates))
	return e.rate(base, target)
}

// Convert converts amount from base to target at the current rate. When the
// currencies match the amount is returned unchanged and the cache is not
// consulted. The result keeps full precision; rounding is the caller's
// presentation concern.
func (c *Cache) Convert(ctx context.Context, amount decimal.Decimal, base, target string) (decimal.Decimal, error) {
	if base == target {
		return amount, nil
	}
	rate, err := c.GetRate(ctx, base, target)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

// fresh returns the cached entry for base if it exists and is still within
// the validity window. Stale entries are never served.
func (c *Cache) fresh(base string) (entry, bool) {
	v, ok := c.entries.Get(base)
	if !ok {
		return entry{}, false
	}
	e := v.(entry)
	if c.now().Sub(e.fetchedAt) >= c.validity {
		return entry{}, false
	}
	return e, true
}

func (e entry) rate(base, target string) (decimal.Decimal, error) {
	rate, ok := e.rates[target]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s has no rate for %s", ErrRateUnavailable, base, target)
	}
	return rate, nil
}

var _ Converter = (*Cache)(nil)
