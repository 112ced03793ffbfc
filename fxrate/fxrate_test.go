package fxrate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves canned rate tables and counts upstream fetches.
type fakeProvider struct {
	tables  map[string]map[string]decimal.Decimal
	err     error
	fetches int
}

func (p *fakeProvider) FetchRates(_ context.Context, base string) (map[string]decimal.Decimal, error) {
	p.fetches++
	if p.err != nil {
		return nil, p.err
	}
	table, ok := p.tables[base]
	if !ok {
		return nil, errors.New("unknown base")
	}
	return table, nil
}

func usdTable() map[string]map[string]decimal.Decimal {
	return map[string]map[string]decimal.Decimal{
		"USD": {
			"EUR": decimal.NewFromFloat(0.92),
			"GBP": decimal.NewFromFloat(0.79),
		},
	}
}

func TestGetRate_CacheHit(t *testing.T) {
	p := &fakeProvider{tables: usdTable()}
	c := NewCache(p)

	rate, err := c.GetRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.92)))

	// Second call within the window: same rate, no second fetch.
	rate, err = c.GetRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.92)))
	assert.Equal(t, 1, p.fetches)
}

func TestGetRate_Expiry(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := &fakeProvider{tables: usdTable()}
	c := NewCache(p, WithClock(func() time.Time { return now }))

	_, err := c.GetRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)

	// Just inside the window: cached.
	now = now.Add(Validity - time.Second)
	_, err = c.GetRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 1, p.fetches)

	// At the window boundary: stale, must refetch.
	now = now.Add(time.Second)
	_, err = c.GetRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 2, p.fetches)
}

func TestGetRate_TargetMissing(t *testing.T) {
	p := &fakeProvider{tables: usdTable()}
	c := NewCache(p)

	_, err := c.GetRate(context.Background(), "USD", "XXX")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateUnavailable)
	// A fresh table lacking the target must not trigger another fetch.
	_, err = c.GetRate(context.Background(), "USD", "XXX")
	assert.ErrorIs(t, err, ErrRateUnavailable)
	assert.Equal(t, 1, p.fetches)
}

func TestGetRate_FetchFailureKeepsOldEntry(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := &fakeProvider{tables: usdTable()}
	c := NewCache(p, WithClock(func() time.Time { return now }))

	_, err := c.GetRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)

	// Entry goes stale, and the provider starts failing.
	now = now.Add(2 * Validity)
	p.err = errors.New("boom")
	_, err = c.GetRate(context.Background(), "USD", "EUR")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversionFailed)

	// Provider recovers: the stale entry was never corrupted, a clean
	// refetch succeeds.
	p.err = nil
	rate, err := c.GetRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.92)))
}

func TestConvert_Identity(t *testing.T) {
	p := &fakeProvider{tables: usdTable()}
	c := NewCache(p)

	amount := decimal.NewFromInt(100)
	got, err := c.Convert(context.Background(), amount, "EUR", "EUR")
	require.NoError(t, err)
	assert.True(t, got.Equal(amount))
	// Identity conversion never consults the cache or the provider.
	assert.Equal(t, 0, p.fetches)
	assert.Equal(t, 0, c.entries.ItemCount())
}

func TestConvert(t *testing.T) {
	p := &fakeProvider{tables: usdTable()}
	c := NewCache(p)

	got, err := c.Convert(context.Background(), decimal.NewFromInt(100), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(92)), "got %s", got)
}
