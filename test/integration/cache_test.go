package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
	"github.com/fare-search/fare-search-orchestration-service/test/mock"
)

func TestCache_SecondSearchServedFromCache(t *testing.T) {
	upstream := mock.NewSearchPort().WithPricesByDate(MarchPrices())
	server := NewTestServer(upstream)

	first := server.CheapestDayRequest(DefaultCheapestDayBody())
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, 5, upstream.CallCount())

	second := server.CheapestDayRequest(DefaultCheapestDayBody())
	require.Equal(t, http.StatusOK, second.Code)

	var result domain.CheapestDayResult
	require.NoError(t, second.ParseInto(&result))

	assert.Equal(t, 5, upstream.CallCount(), "repeat search must not hit upstream")
	assert.Equal(t, 5, result.Counts.CacheHits)
	require.NotNil(t, result.Cheapest)
	assert.True(t, result.Cheapest.FromCache)
	assert.Equal(t, 260.0, result.Cheapest.Price)
}

func TestCache_CalendarSweepWarmsPriceCheck(t *testing.T) {
	upstream := mock.NewSearchPort().WithPricesByDate(MarchPrices())
	server := NewTestServer(upstream)

	sweep := server.CheapestDayRequest(DefaultCheapestDayBody())
	require.Equal(t, http.StatusOK, sweep.Code)
	callsAfterSweep := upstream.CallCount()

	check := server.PriceCheckRequest(map[string]interface{}{
		"origin":      "SFO",
		"destination": "JFK",
		"date":        "2026-03-04",
	})
	require.Equal(t, http.StatusOK, check.Code)

	var result domain.PriceCheckResult
	require.NoError(t, check.ParseInto(&result))

	assert.True(t, result.FromCache)
	require.NotNil(t, result.Offer)
	assert.Equal(t, 260.0, result.Offer.Price.Amount)
	assert.Equal(t, callsAfterSweep, upstream.CallCount(), "warmed date must not hit upstream")
}

func TestCache_StatsAndClearLifecycle(t *testing.T) {
	upstream := mock.NewSearchPort().WithPricesByDate(MarchPrices())
	server := NewTestServer(upstream)

	require.Equal(t, http.StatusOK, server.CheapestDayRequest(DefaultCheapestDayBody()).Code)

	stats := server.CacheStatsRequest()
	require.Equal(t, http.StatusOK, stats.Code)

	statsBody, err := stats.ParseError()
	require.NoError(t, err)
	assert.Equal(t, float64(5), statsBody["entryCount"])

	cleared := server.Do(Request{Method: http.MethodDelete, Path: "/api/v1/cache"})
	require.Equal(t, http.StatusOK, cleared.Code)

	clearedBody, err := cleared.ParseError()
	require.NoError(t, err)
	assert.Equal(t, float64(5), clearedBody["cleared"])

	// After the clear the same search goes upstream again.
	upstream.Reset()
	require.Equal(t, http.StatusOK, server.CheapestDayRequest(DefaultCheapestDayBody()).Code)
	assert.Equal(t, 5, upstream.CallCount())
}

func TestCache_DistinctWindowsShareOverlappingDates(t *testing.T) {
	upstream := mock.NewSearchPort().WithPricesByDate(MarchPrices())
	server := NewTestServer(upstream)

	first := DefaultCheapestDayBody()
	first.DateTo = "2026-03-03"
	require.Equal(t, http.StatusOK, server.CheapestDayRequest(first).Code)
	require.Equal(t, 3, upstream.CallCount())

	// The second window overlaps the first on 03-02..03-03; only the two
	// new dates go upstream.
	second := DefaultCheapestDayBody()
	second.DateFrom = "2026-03-02"
	resp := server.CheapestDayRequest(second)
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.CheapestDayResult
	require.NoError(t, resp.ParseInto(&result))

	assert.Equal(t, 5, upstream.CallCount())
	assert.Equal(t, 2, result.Counts.CacheHits)
}
