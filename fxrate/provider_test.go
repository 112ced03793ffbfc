package fxrate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRates_V4Shape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92,"GBP":0.79}}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "")
	rates, err := p.FetchRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.True(t, rates["EUR"].Equal(decimal.NewFromFloat(0.92)))
	assert.True(t, rates["GBP"].Equal(decimal.NewFromFloat(0.79)))
}

func TestFetchRates_V6Shape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/secret/latest/EUR", r.URL.Path)
		w.Write([]byte(`{"result":"success","base_code":"EUR","conversion_rates":{"USD":1.08}}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "secret")
	rates, err := p.FetchRates(context.Background(), "EUR")
	require.NoError(t, err)
	assert.True(t, rates["USD"].Equal(decimal.NewFromFloat(1.08)))
}

func TestFetchRates_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "")
	_, err := p.FetchRates(context.Background(), "USD")
	require.Error(t, err)
}

func TestFetchRates_NoRateTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error"}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "")
	_, err := p.FetchRates(context.Background(), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rate table")
}
