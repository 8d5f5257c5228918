package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/service"
	"smart_thermostat/internal/weather"
)

func TestWeatherHandler_Success(t *testing.T) {
	wx := &mockWeather{reading: models.WeatherReading{TemperatureC: 14.2, Location: "Oslo, NO"}}
	r := newOpenRouter(&service.Service{Weather: wx})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather?lat=59.91&lon=10.75", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if wx.lastFallback || wx.lastAt != (weather.Coordinates{Lat: 59.91, Lon: 10.75}) {
		t.Fatalf("unexpected call: at=%+v fallback=%v", wx.lastAt, wx.lastFallback)
	}

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["temperature"] != 14.2 || out["location"] != "Oslo, NO" || out["fallback"] != false {
		t.Fatalf("unexpected body: %v", out)
	}
}

func TestWeatherHandler_FallbackSkipsCoordinates(t *testing.T) {
	wx := &mockWeather{reading: models.WeatherReading{TemperatureC: 21, Location: "Tokyo (Sample Data)", Fallback: true}}
	r := newOpenRouter(&service.Service{Weather: wx})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather?fallback=true", nil))
	if w.Code != http.StatusOK || !wx.lastFallback {
		t.Fatalf("status=%d fallback=%v body=%s", w.Code, wx.lastFallback, w.Body.String())
	}
}

func TestWeatherHandler_BadCoordinates(t *testing.T) {
	for _, q := range []string{"", "?lat=10", "?lon=10", "?lat=abc&lon=1", "?lat=1&lon=xyz"} {
		t.Run(q, func(t *testing.T) {
			wx := &mockWeather{}
			r := newOpenRouter(&service.Service{Weather: wx})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather"+q, nil))
			if w.Code != http.StatusBadRequest || wx.calls != 0 {
				t.Fatalf("expected 400 without lookup, got %d calls=%d", w.Code, wx.calls)
			}
		})
	}
}

func TestWeatherHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: lat 95", weather.ErrInvalidCoordinates), http.StatusBadRequest},
		{weather.ErrNotConfigured, http.StatusServiceUnavailable},
		{weather.ErrUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("openweather: %w", weather.ErrRateLimited), http.StatusTooManyRequests},
		{weather.ErrTimeout, http.StatusGatewayTimeout},
		{weather.ErrUnavailable, http.StatusBadGateway},
		{fmt.Errorf("something else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			r := newOpenRouter(&service.Service{Weather: &mockWeather{err: tc.err}})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather?lat=1&lon=2", nil))
			if w.Code != tc.want {
				t.Fatalf("got %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestWeatherHandler_UnauthorizedMessage(t *testing.T) {
	r := newOpenRouter(&service.Service{Weather: &mockWeather{err: weather.ErrUnauthorized}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather?lat=1&lon=2", nil))

	var out map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["error"] != "Weather API key invalid" {
		t.Fatalf("unexpected error message: %v", out)
	}
}
