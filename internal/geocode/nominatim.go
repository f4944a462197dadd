// Package geocode resolves place names to coordinates through the
// OpenStreetMap Nominatim API. Lookups go through a persistent cache and a
// minimum-interval rate limit, since Nominatim allows at most one request
// per second. The compliance and route engines never call this package;
// only the write path and the GPS endpoints do.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"driverlogs/internal/models"
)

// Cache is the persistent location cache the client reads through.
type Cache interface {
	Get(ctx context.Context, name string) (*models.CachedLocation, error)
	Put(ctx context.Context, loc models.CachedLocation) error
}

// Config carries the knobs read from the application config.
type Config struct {
	BaseURL     string        // e.g. https://nominatim.openstreetmap.org
	UserAgent   string        // required by the Nominatim usage policy
	Timeout     time.Duration // per-request timeout
	MinInterval time.Duration // minimum spacing between outbound calls
}

const (
	defaultBaseURL     = "https://nominatim.openstreetmap.org"
	defaultUserAgent   = "driverlogs/1.0"
	defaultTimeout     = 10 * time.Second
	defaultMinInterval = 1100 * time.Millisecond
)

// Client is a rate-limited, cache-backed Nominatim client.
type Client struct {
	http      *http.Client
	cache     Cache
	baseURL   string
	userAgent string

	mu          sync.Mutex
	lastCall    time.Time
	minInterval time.Duration
}

// NewClient builds a client; zero-valued config fields fall back to the
// Nominatim defaults. The cache may be nil, which disables caching.
func NewClient(cfg Config, cache Cache) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = defaultMinInterval
	}

	return &Client{
		http:        &http.Client{Timeout: cfg.Timeout},
		cache:       cache,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		minInterval: cfg.MinInterval,
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Country  string `json:"country"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// Geocode resolves a place name to coordinates. Names are trimmed and
// lowercased before cache lookup so "Los Angeles" and "los angeles" share
// an entry. Returns (nil, nil) when the name resolves to nothing.
func (c *Client) Geocode(ctx context.Context, name string) (*models.CachedLocation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, nil
	}

	if c.cache != nil {
		if hit, err := c.cache.Get(ctx, key); err == nil && hit != nil {
			return hit, nil
		}
	}

	q := url.Values{}
	q.Set("q", key)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("addressdetails", "1")

	var results []searchResult
	if err := c.get(ctx, "/search", q, &results); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: parse lat %q: %w", name, results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: parse lon %q: %w", name, results[0].Lon, err)
	}

	loc := models.CachedLocation{
		Name:             key,
		Lat:              lat,
		Lng:              lng,
		FormattedAddress: results[0].DisplayName,
	}

	if c.cache != nil {
		// Best effort: a failed cache write only costs a future API call.
		_ = c.cache.Put(ctx, loc)
	}

	return &loc, nil
}

// Reverse resolves coordinates to an address. Returns (nil, nil) when
// nothing is found.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (*models.Address, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("format", "json")
	q.Set("addressdetails", "1")

	var result reverseResult
	if err := c.get(ctx, "/reverse", q, &result); err != nil {
		return nil, fmt.Errorf("reverse geocode (%v, %v): %w", lat, lng, err)
	}
	if result.DisplayName == "" {
		return nil, nil
	}

	city := result.Address.City
	if city == "" {
		city = result.Address.Town
	}
	if city == "" {
		city = result.Address.Village
	}

	return &models.Address{
		Address: result.DisplayName,
		City:    city,
		State:   result.Address.State,
		Country: result.Address.Country,
		ZipCode: result.Address.Postcode,
	}, nil
}

// get performs one rate-limited API call and decodes the JSON body.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.waitTurn(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// waitTurn enforces the minimum spacing between outbound calls.
func (c *Client) waitTurn(ctx context.Context) error {
	c.mu.Lock()
	wait := c.minInterval - time.Since(c.lastCall)
	if wait < 0 {
		wait = 0
	}
	// Reserve the slot before sleeping so concurrent callers queue up.
	c.lastCall = time.Now().Add(wait)
	c.mu.Unlock()

	if wait == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
