package handlers

import (
	"context"
	"net/http"
	"sync"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/service"
	"smart_thermostat/internal/weather"

	"github.com/gin-gonic/gin"
)

// mockAuth records the last credentials or token it saw and answers with
// the canned values for each call.
type mockAuth struct {
	newID     int
	createErr error
	token     string
	loginErr  error
	subject   int
	verifyErr error

	gotUser, gotPass, gotToken string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.gotUser, m.gotPass = username, password
	return m.newID, m.createErr
}

func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.gotUser, m.gotPass = username, password
	return m.token, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.gotToken = token
	return m.subject, m.verifyErr
}

type mockThermostat struct {
	result  models.AdjustmentResult
	err     error
	calls   int
	lastReq models.AdjustmentRequest
}

func (m *mockThermostat) Adjust(_ context.Context, req models.AdjustmentRequest) (models.AdjustmentResult, error) {
	m.calls++
	m.lastReq = req
	return m.result, m.err
}

type mockHistory struct {
	resp       []models.AdjustmentRecord
	err        error
	allCalls   int
	listCalls  int
	lastFilter service.HistoryFilter
}

func (m *mockHistory) All(_ context.Context) ([]models.AdjustmentRecord, error) {
	m.allCalls++
	return m.resp, m.err
}

func (m *mockHistory) List(_ context.Context, f service.HistoryFilter) ([]models.AdjustmentRecord, error) {
	m.listCalls++
	m.lastFilter = f
	return m.resp, m.err
}

type mockMonitoring struct {
	mu    sync.Mutex
	state models.ThermostatState
	err   error
	calls int
}

func (m *mockMonitoring) GetState(_ context.Context) (models.ThermostatState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.state, m.err
}

type mockWeather struct {
	reading      models.WeatherReading
	err          error
	calls        int
	lastAt       weather.Coordinates
	lastFallback bool
}

func (m *mockWeather) Current(_ context.Context, at weather.Coordinates, useFallback bool) (models.WeatherReading, error) {
	m.calls++
	m.lastAt = at
	m.lastFallback = useFallback
	return m.reading, m.err
}

// newTestRouter builds the full router with authentication enforced.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil, true).InitRoutes()
}

// newOpenRouter builds the full router without the auth guard.
func newOpenRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil, false).InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func withHeaders(req *http.Request, hdr http.Header) *http.Request {
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
