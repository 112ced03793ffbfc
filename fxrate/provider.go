package fxrate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public exchangerate-api endpoint; the keyed v6
// endpoint is used when an API key is configured.
const DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest"

// HTTPProvider fetches rate tables over HTTP.
//
// The upstream answers either {"rates": {...}} (v4) or
// {"conversion_rates": {...}} (v6); both shapes are normalized into the same
// target->rate mapping before entering the cache.
type HTTPProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHTTPProvider returns a provider for the given endpoint. An empty
// baseURL selects the default public endpoint.
func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 20 * time.Second},
	}
}

// FetchRates retrieves and normalizes the full rate table for base.
func (p *HTTPProvider) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	var jobj any
	if err := p.jwget(ctx, p.url(base), &jobj); err != nil {
		return nil, fmt.Errorf("fetching %q rates: %w", base, err)
	}

	// The two known response shapes, in order of preference.
	for _, path := range []string{"$.conversion_rates", "$.rates"} {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		table, ok := jval.(map[string]any)
		if !ok {
			continue
		}
		return normalize(base, table)
	}
	return nil, fmt.Errorf("no rate table in response for %q", base)
}

func (p *HTTPProvider) url(base string) string {
	if p.APIKey != "" {
		return fmt.Sprintf("%s/%s/latest/%s", p.BaseURL, p.APIKey, base)
	}
	return fmt.Sprintf("%s/%s", p.BaseURL, base)
}

// normalize converts the loosely typed jsonpath result into decimals.
func normalize(base string, table map[string]any) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal, len(table))
	for target, v := range table {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("rate %s->%s is not a number: %v", base, target, v)
		}
		rates[target] = decimal.NewFromFloat(f)
	}
	return rates, nil
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
func (p *HTTPProvider) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

var _ Provider = (*HTTPProvider)(nil)
