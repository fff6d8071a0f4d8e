// Package integration provides helpers and integration tests for the fare
// search service. Integration tests verify that components work together
// correctly, including HTTP handlers, the orchestration use case, the
// response cache, and the mock upstream port.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/fare-search/fare-search-orchestration-service/internal/adapter/http"
	"github.com/fare-search/fare-search-orchestration-service/internal/adapter/http/middleware"
	"github.com/fare-search/fare-search-orchestration-service/internal/cache"
	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
	"github.com/fare-search/fare-search-orchestration-service/internal/infrastructure/timeutil"
	"github.com/fare-search/fare-search-orchestration-service/internal/usecase"
	"github.com/fare-search/fare-search-orchestration-service/test/mock"
)

// TestServer wraps an Echo instance wired with a real use case, a real
// response cache, and a mock upstream port.
type TestServer struct {
	Echo     *echo.Echo
	Upstream *mock.SearchPort
	Cache    *usecase.ResponseCache
}

// NewTestServer creates a test server around the given mock upstream.
func NewTestServer(upstream *mock.SearchPort) *TestServer {
	return NewTestServerWithConfig(upstream, nil)
}

// NewTestServerWithConfig creates a test server with custom use case
// configuration.
func NewTestServerWithConfig(upstream *mock.SearchPort, config *usecase.Config) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, zerolog.Nop())

	responseCache := cache.MustNew[[]domain.Offer](100, 5*time.Minute, timeutil.NewRealClock())
	uc := usecase.NewFareSearchUseCase(upstream, responseCache, config, zerolog.Nop())

	handler := httpAdapter.NewFareHandler(uc, upstream)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Upstream: upstream,
		Cache:    responseCache,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// CheapestDayRequest posts a cheapest-day search with the given body.
func (ts *TestServer) CheapestDayRequest(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/fares/cheapest-day", Body: body})
}

// CheapestRouteRequest posts a cheapest-route search with the given body.
func (ts *TestServer) CheapestRouteRequest(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/fares/cheapest-route", Body: body})
}

// PriceCheckRequest posts a price check with the given body.
func (ts *TestServer) PriceCheckRequest(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/fares/price-check", Body: body})
}

// BatchRequest posts a batch search with the given body.
func (ts *TestServer) BatchRequest(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/fares/batch", Body: body})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/health"})
}

// CacheStatsRequest fetches the response cache statistics.
func (ts *TestServer) CacheStatsRequest() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/cache/stats"})
}

// ParseInto unmarshals the response body into the given target.
func (r *Response) ParseInto(target interface{}) error {
	return json.Unmarshal(r.Body, target)
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// CheapestDayBody is a helper struct for building cheapest-day request bodies.
type CheapestDayBody struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	Adults      int    `json:"adults,omitempty"`
}

// DefaultCheapestDayBody returns a valid five-day search window.
func DefaultCheapestDayBody() CheapestDayBody {
	return CheapestDayBody{
		Origin:      "SFO",
		Destination: "JFK",
		DateFrom:    "2026-03-01",
		DateTo:      "2026-03-05",
	}
}

// MarchPrices returns a per-date price table covering the default window.
func MarchPrices() map[string]float64 {
	return map[string]float64{
		"2026-03-01": 310,
		"2026-03-02": 280,
		"2026-03-03": 295,
		"2026-03-04": 260,
		"2026-03-05": 300,
	}
}
