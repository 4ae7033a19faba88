package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/domain"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// DefaultURL is the OpenWeatherMap current-weather endpoint.
const DefaultURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current weather from the OpenWeatherMap API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client. The timeout bounds each request;
// clock stamps "_fetched_at" and times the upstream call.
func NewClient(apiKey, baseURL string, timeout time.Duration, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// GetCurrent returns the raw current-weather payload for city, stamped with
// "_fetched_at". Failures are reported as the domain upstream error types.
func (c *Client) GetCurrent(ctx context.Context, city string) (map[string]any, error) {
	if c.apiKey == "" {
		return nil, errors.New("openweather: API key is not configured")
	}

	params := url.Values{
		"q":     {city},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.Observe(c.clock.Since(start).Seconds())
	if err != nil {
		c.observe("request_error")
		return nil, &domain.UpstreamRequestError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.observe("not_found")
		return nil, fmt.Errorf("city '%s' not found: %w", city, domain.ErrUpstreamNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.observe("http_error")
		c.logger.Warn("openweather returned error status", "city", city, "status", resp.StatusCode, "body", string(body))
		return nil, &domain.UpstreamHTTPError{Status: resp.StatusCode}
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.observe("invalid_response")
		return nil, fmt.Errorf("invalid JSON from OpenWeather: %w", domain.ErrUpstreamInvalidResponse)
	}
	if _, ok := payload["main"]; !ok {
		c.observe("invalid_response")
		return nil, fmt.Errorf("missing 'main' section in response: %w", domain.ErrUpstreamInvalidResponse)
	}

	if _, ok := payload["_fetched_at"]; !ok {
		payload["_fetched_at"] = c.clock.Now().UTC().Format(time.RFC3339Nano)
	}
	c.observe("success")
	return payload, nil
}

func (c *Client) observe(outcome string) {
	c.metrics.UpstreamRequests.WithLabelValues(outcome).Inc()
}
