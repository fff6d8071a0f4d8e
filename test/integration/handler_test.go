package integration

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
	"github.com/fare-search/fare-search-orchestration-service/test/mock"
)

func TestCheapestDay_EndToEnd(t *testing.T) {
	upstream := mock.NewSearchPort().WithPricesByDate(MarchPrices())
	server := NewTestServer(upstream)

	resp := server.CheapestDayRequest(DefaultCheapestDayBody())
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.CheapestDayResult
	require.NoError(t, resp.ParseInto(&result))

	require.NotNil(t, result.Cheapest)
	assert.Equal(t, "2026-03-04", result.Cheapest.Date)
	assert.Equal(t, 260.0, result.Cheapest.Price)
	assert.Equal(t, "USD", result.Cheapest.Currency)

	require.Len(t, result.Calendar, 5)
	assert.Equal(t, "2026-03-01", result.Calendar[0].Date)
	assert.Equal(t, "2026-03-05", result.Calendar[4].Date)
	for _, entry := range result.Calendar {
		assert.True(t, entry.Available)
	}

	require.Len(t, result.ByPrice, 5)
	assert.Equal(t, "2026-03-04", result.ByPrice[0].Date)
	assert.Equal(t, "2026-03-01", result.ByPrice[4].Date)

	assert.Equal(t, 5, result.Counts.Searched)
	assert.Equal(t, 5, result.Counts.Succeeded)
	assert.Equal(t, 0, result.Counts.CacheHits)
	assert.Equal(t, 5, upstream.CallCount())
}

func TestCheapestDay_DateWithoutFares(t *testing.T) {
	prices := MarchPrices()
	delete(prices, "2026-03-03")

	upstream := mock.NewSearchPort().WithPricesByDate(prices)
	server := NewTestServer(upstream)

	resp := server.CheapestDayRequest(DefaultCheapestDayBody())
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.CheapestDayResult
	require.NoError(t, resp.ParseInto(&result))

	// The empty date stays visible in the calendar with a null price.
	require.Len(t, result.Calendar, 5)
	assert.False(t, result.Calendar[2].Available)
	assert.Nil(t, result.Calendar[2].Price)

	assert.Len(t, result.ByPrice, 4)
	require.NotNil(t, result.Cheapest)
	assert.Equal(t, "2026-03-04", result.Cheapest.Date)
}

func TestCheapestDay_ValidationError(t *testing.T) {
	server := NewTestServer(mock.NewSearchPort())

	body := DefaultCheapestDayBody()
	body.Origin = ""

	resp := server.CheapestDayRequest(body)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "validation_error", errResp["code"])

	assert.Zero(t, server.Upstream.CallCount(), "invalid requests must not reach upstream")
}

func TestCheapestDay_ReversedWindow(t *testing.T) {
	server := NewTestServer(mock.NewSearchPort())

	body := DefaultCheapestDayBody()
	body.DateFrom, body.DateTo = body.DateTo, body.DateFrom

	resp := server.CheapestDayRequest(body)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Zero(t, server.Upstream.CallCount())
}

func TestCheapestRoute_EndToEnd(t *testing.T) {
	upstream := mock.NewSearchPort().WithPricesByDestination(map[string]float64{
		"JFK": 320,
		"BOS": 250,
		"ORD": 290,
	})
	server := NewTestServer(upstream)

	resp := server.CheapestRouteRequest(map[string]interface{}{
		"origin":       "SFO",
		"destinations": []string{"JFK", "BOS", "ORD"},
		"date":         "2026-03-01",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.CheapestRouteResult
	require.NoError(t, resp.ParseInto(&result))

	require.NotNil(t, result.Cheapest)
	assert.Equal(t, "BOS", result.Cheapest.Destination)
	assert.Equal(t, 250.0, result.Cheapest.Price)

	require.Len(t, result.Routes, 3)
	assert.Equal(t, "BOS", result.Routes[0].Destination)
	assert.Equal(t, "ORD", result.Routes[1].Destination)
	assert.Equal(t, "JFK", result.Routes[2].Destination)
}

func TestBatchSearch_EndToEnd(t *testing.T) {
	upstream := mock.NewSearchPort().WithPricesByDate(MarchPrices())
	server := NewTestServer(upstream)

	resp := server.BatchRequest(map[string]interface{}{
		"searches": []map[string]interface{}{
			{"origin": "SFO", "destination": "JFK", "date": "2026-03-01"},
			{"origin": "SFO", "destination": "JFK", "date": "2026-03-04"},
		},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.BatchSearchResult
	require.NoError(t, resp.ParseInto(&result))

	assert.Equal(t, 2, result.Successful)
	require.Len(t, result.Results, 2)
	assert.Equal(t, 0, result.Results[0].Index)
	assert.Equal(t, 1, result.Results[1].Index)
	require.NotNil(t, result.Results[1].Offer)
	assert.Equal(t, 260.0, result.Results[1].Offer.Price.Amount)
}

func TestPriceCheck_UpstreamFailure(t *testing.T) {
	upstream := mock.NewSearchPort().WithError(errors.New("upstream unavailable"))
	server := NewTestServer(upstream)

	resp := server.PriceCheckRequest(map[string]interface{}{
		"origin":      "SFO",
		"destination": "JFK",
		"date":        "2026-03-01",
	})
	require.Equal(t, http.StatusBadGateway, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "upstream_failure", errResp["code"])
}

func TestHealth_ReflectsUpstreamState(t *testing.T) {
	t.Run("upstream reachable", func(t *testing.T) {
		server := NewTestServer(mock.NewSearchPort())

		resp := server.HealthRequest()
		require.Equal(t, http.StatusOK, resp.Code)

		body, err := resp.ParseError()
		require.NoError(t, err)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "ok", body["upstream"])
	})

	t.Run("upstream down reports degraded", func(t *testing.T) {
		server := NewTestServer(mock.NewSearchPort().WithError(errors.New("connection refused")))

		resp := server.HealthRequest()
		require.Equal(t, http.StatusOK, resp.Code)

		body, err := resp.ParseError()
		require.NoError(t, err)
		assert.Equal(t, "degraded", body["status"])
		assert.Equal(t, "unreachable", body["upstream"])
	})
}

func TestRequestID_PresentOnResponses(t *testing.T) {
	server := NewTestServer(mock.NewSearchPort())

	resp := server.HealthRequest()
	assert.NotEmpty(t, resp.Headers.Get("X-Request-ID"))
}
