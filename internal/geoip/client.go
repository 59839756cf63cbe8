// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

package geoip

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/sessionmap/internal/cache"
	"github.com/tomtom215/sessionmap/internal/metrics"
	"github.com/tomtom215/sessionmap/internal/models"
)

var (
	// ErrInvalidIP is returned for input that is not an IP address.
	ErrInvalidIP = errors.New("invalid IP address")

	// ErrRateLimited is returned when the request budget is exhausted, either
	// locally or by the remote service answering 429.
	ErrRateLimited = errors.New("geoip rate limit exceeded")

	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = errors.New("geoip service unavailable")
)

const breakerName = "geoip-api"

// ipAPIFields limits the ip-api.com response to what we use.
const ipAPIFields = "status,message,country,countryCode,regionName,city,lat,lon,query"

// Config configures a Client.
type Config struct {
	// BaseURL is the ip-api.com compatible endpoint, without the /json suffix.
	BaseURL string
	// RequestsPerMinute is the local request budget. ip-api.com's free tier
	// allows 45.
	RequestsPerMinute int
	// Timeout bounds one HTTP call.
	Timeout time.Duration
	// Breaker tunes the circuit breaker; zero uses DefaultBreakerSettings.
	Breaker BreakerSettings
	// CacheSize bounds the number of remembered addresses.
	CacheSize int
	// CacheTTL is how long a resolved address is trusted.
	CacheTTL time.Duration
}

// Client resolves IP addresses to countries through ip-api.com.
//
// Calls are rate limited with a token bucket and wrapped in a circuit breaker.
// Successful results are kept in a bounded LRU, so repeated ingestion passes
// over the same logs do not ask twice for an address. A Client is safe for
// concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[*models.Geolocation]
	known   *cache.LRU[*models.Geolocation]
	nowFn   func() time.Time
}

type ipAPIResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Query       string  `json:"query"`
}

// NewClient creates a Client.
func NewClient(cfg Config) *Client {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 45
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Breaker == (BreakerSettings{}) {
		cfg.Breaker = DefaultBreakerSettings()
	}

	perMinute := rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(perMinute, cfg.RequestsPerMinute),
		breaker: newBreaker(breakerName, cfg.Breaker),
		known:   cache.NewLRU[*models.Geolocation](cfg.CacheSize, cfg.CacheTTL),
		nowFn:   time.Now,
	}
}

// Country returns the country name for ip. Private and reserved addresses
// resolve to "" without an error.
func (c *Client) Country(ctx context.Context, ip string) (string, error) {
	geo, err := c.Lookup(ctx, ip)
	if err != nil {
		return "", err
	}
	return geo.Country, nil
}

// Lookup returns the geolocation of ip.
func (c *Client) Lookup(ctx context.Context, ip string) (*models.Geolocation, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}
	key := addr.String()

	if !isPublic(addr) {
		metrics.RecordGeoIPLookup("private", 0)
		return &models.Geolocation{IPAddress: key, LastUpdated: c.nowFn()}, nil
	}

	if geo, ok := c.known.Get(key); ok {
		return geo, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.RecordGeoIPLookup("rate_limited", 0)
		return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	start := time.Now()
	geo, err := c.breaker.Execute(func() (*models.Geolocation, error) {
		return c.query(ctx, key)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		metrics.RecordGeoIPLookup("rejected", 0)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	case errors.Is(err, ErrRateLimited):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		metrics.RecordGeoIPLookup("rate_limited", time.Since(start))
		return nil, err
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		metrics.RecordGeoIPLookup("failure", time.Since(start))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	metrics.RecordGeoIPLookup("success", time.Since(start))

	c.known.Add(key, geo)
	return geo, nil
}

func (c *Client) query(ctx context.Context, ip string) (*models.Geolocation, error) {
	url := fmt.Sprintf("%s/json/%s?fields=%s", c.baseURL, ip, ipAPIFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query ip-api.com: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ip-api.com returned status %d", resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode ip-api.com response: %w", err)
	}

	if result.Status != "success" {
		// ip-api.com answers "private range" / "reserved range" for
		// addresses it cannot place; those are not failures.
		if strings.Contains(result.Message, "range") {
			return &models.Geolocation{IPAddress: ip, LastUpdated: c.nowFn()}, nil
		}
		return nil, fmt.Errorf("ip-api.com lookup failed: %s", result.Message)
	}

	geo := &models.Geolocation{
		IPAddress:   ip,
		Country:     result.Country,
		CountryCode: result.CountryCode,
		Latitude:    result.Lat,
		Longitude:   result.Lon,
		LastUpdated: c.nowFn(),
	}
	if result.City != "" {
		geo.City = &result.City
	}
	if result.RegionName != "" {
		geo.Region = &result.RegionName
	}
	return geo, nil
}

// IsPrivateIP reports whether ip is a valid address that cannot be
// geolocated (private, loopback, link-local or unspecified).
func IsPrivateIP(ip string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	return !isPublic(addr)
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	return !(addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified())
}
