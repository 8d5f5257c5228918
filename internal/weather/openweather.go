package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"smart_thermostat/internal/models"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org"
	DefaultTimeout = 5 * time.Second

	currentWeatherPath = "/data/2.5/weather"
	maxErrorBody       = 512
)

// OpenWeatherClient queries the OpenWeatherMap current-weather endpoint.
type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	now        func() time.Time
}

// OpenWeatherOption configures an OpenWeatherClient.
type OpenWeatherOption func(*OpenWeatherClient)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) OpenWeatherOption {
	return func(c *OpenWeatherClient) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeout bounds each lookup.
func WithTimeout(d time.Duration) OpenWeatherOption {
	return func(c *OpenWeatherClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) OpenWeatherOption {
	return func(c *OpenWeatherClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewOpenWeatherClient(apiKey string, opts ...OpenWeatherOption) *OpenWeatherClient {
	c := &OpenWeatherClient{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Provider = (*OpenWeatherClient)(nil)

type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type openWeatherError struct {
	Message string `json:"message"`
}

// Current fetches the temperature at the given coordinates in °C.
func (c *OpenWeatherClient) Current(ctx context.Context, at Coordinates) (models.WeatherReading, error) {
	if c.apiKey == "" {
		return models.WeatherReading{}, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(at), nil)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("build weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return models.WeatherReading{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return models.WeatherReading{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherReading{}, statusError(resp)
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if isTimeout(err) {
			return models.WeatherReading{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return models.WeatherReading{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if body.Main.Temp == nil {
		return models.WeatherReading{}, fmt.Errorf("%w: response has no temperature", ErrUnavailable)
	}

	return models.WeatherReading{
		TemperatureC: round1(*body.Main.Temp),
		Location:     locationName(body, at),
		FetchedAt:    c.now().UTC(),
	}, nil
}

func (c *OpenWeatherClient) requestURL(at Coordinates) string {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	return c.baseURL + currentWeatherPath + "?" + q.Encode()
}

// statusError maps a non-200 response to one of the package errors.
func statusError(resp *http.Response) error {
	var detail openWeatherError
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &detail)

	msg := detail.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, msg)
	case resp.StatusCode == http.StatusGatewayTimeout || resp.StatusCode == http.StatusRequestTimeout:
		return fmt.Errorf("%w: status %d", ErrTimeout, resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, msg)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func locationName(body openWeatherResponse, at Coordinates) string {
	switch {
	case body.Name != "" && body.Sys.Country != "":
		return body.Name + ", " + body.Sys.Country
	case body.Name != "":
		return body.Name
	default:
		return at.String()
	}
}
