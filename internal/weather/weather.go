// Package weather fetches the current conditions for the school's
// coordinates from the Open-Meteo forecast API and maps the WMO weather
// code onto the five presentational states the dashboard knows.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/config"
)

// Condition is one of the dashboard's presentational weather states.
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionPartlyCloudy Condition = "partly-cloudy"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionFog          Condition = "fog"
)

// Report is the dashboard-facing weather snapshot.
type Report struct {
	Temperature float64   `json:"temperature"`
	Condition   Condition `json:"condition"`
	Label       string    `json:"label"`
	FetchedAt   time.Time `json:"fetched_at"`
}

const defaultBaseURL = "https://api.open-meteo.com"

// Client queries the forecast endpoint and keeps the last good report so a
// provider outage degrades to slightly stale weather instead of an error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cfg        *config.WeatherConfig
	logger     *zap.Logger

	mu   sync.Mutex
	last *Report
}

// New builds a weather client for the configured coordinates.
func New(cfg *config.WeatherConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		cfg:        cfg,
		logger:     logger,
	}
}

// SetBaseURL points the client at a different forecast endpoint, for
// tests or a self-hosted mirror.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

// Current returns the current weather report. On a fetch failure the last
// good report is served; the error is returned only when there is nothing
// to fall back to.
func (c *Client) Current(ctx context.Context) (*Report, error) {
	report, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warn("weather fetch failed", zap.Error(err))
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.last != nil {
			return c.last, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.last = report
	c.mu.Unlock()
	return report, nil
}

func (c *Client) fetch(ctx context.Context) (*Report, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", c.cfg.Latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", c.cfg.Longitude))
	q.Set("current", "temperature_2m,weather_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	return &Report{
		Temperature: body.Current.Temperature,
		Condition:   mapWeatherCode(body.Current.WeatherCode),
		Label:       c.cfg.Label,
		FetchedAt:   time.Now(),
	}, nil
}

// mapWeatherCode collapses the WMO interpretation codes into the five
// dashboard states. Unknown codes fall through to the fog/default state.
func mapWeatherCode(code int) Condition {
	switch {
	case code == 0:
		return ConditionClear
	case code >= 1 && code <= 3:
		return ConditionPartlyCloudy
	case code >= 71 && code <= 77, code == 85, code == 86:
		return ConditionSnow
	case code >= 51 && code <= 67, code >= 80 && code <= 82, code >= 95 && code <= 99:
		return ConditionRain
	default:
		return ConditionFog
	}
}
