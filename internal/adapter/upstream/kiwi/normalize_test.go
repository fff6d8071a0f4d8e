package kiwi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, raw string) searchResponse {
	t.Helper()
	var envelope searchResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
	return envelope
}

func TestNormalizeOffers_MultiSegment(t *testing.T) {
	envelope := decodeEnvelope(t, `{
		"data": {
			"onewayItineraries": {
				"__typename": "Itineraries",
				"itineraries": [
					{
						"id": "itin-2",
						"price": {"amount": "425.50"},
						"sector": {
							"duration": 28800,
							"sectorSegments": [
								{
									"segment": {
										"source": {"localTime": "2026-03-01T06:00:00", "station": {"code": "SFO"}},
										"destination": {"localTime": "2026-03-01T09:00:00", "station": {"code": "DEN"}}
									}
								},
								{
									"segment": {
										"source": {"localTime": "2026-03-01T10:30:00", "station": {"code": "DEN"}},
										"destination": {"localTime": "2026-03-01T16:00:00", "station": {"code": "JFK"}}
									}
								}
							]
						},
						"bookingOptions": {"edges": []}
					}
				]
			}
		}
	}`)

	offers, err := normalizeOffers(envelope)
	require.NoError(t, err)
	require.Len(t, offers, 1)

	offer := offers[0]
	assert.Equal(t, 425.50, offer.Price.Amount)
	assert.Equal(t, 480, offer.DurationMinutes)
	assert.Equal(t, 1, offer.Stops, "two segments means one stop")
	assert.Equal(t, "SFO", offer.Origin)
	assert.Equal(t, "JFK", offer.Destination, "destination comes from the final segment")
	assert.Equal(t, time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC), offer.DepartureTime)
	assert.Equal(t, time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC), offer.ArrivalTime)
	assert.Empty(t, offer.BookingURL)
}

func TestNormalizeOffers_SkipsUnparseablePrices(t *testing.T) {
	envelope := decodeEnvelope(t, `{
		"data": {
			"onewayItineraries": {
				"__typename": "Itineraries",
				"itineraries": [
					{"id": "bad", "price": {"amount": "not-a-number"}},
					{"id": "good", "price": {"amount": "199.99"}}
				]
			}
		}
	}`)

	offers, err := normalizeOffers(envelope)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "good", offers[0].ID)
}

func TestNormalizeOffers_EmptyItineraries(t *testing.T) {
	envelope := decodeEnvelope(t, `{
		"data": {"onewayItineraries": {"__typename": "Itineraries", "itineraries": []}}
	}`)

	offers, err := normalizeOffers(envelope)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestNormalizeOffers_GraphQLErrors(t *testing.T) {
	envelope := decodeEnvelope(t, `{"errors": [{"message": "query too complex"}]}`)

	_, err := normalizeOffers(envelope)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query too complex")
}

func TestNormalizeOffers_AppError(t *testing.T) {
	envelope := decodeEnvelope(t, `{
		"data": {"onewayItineraries": {"__typename": "AppError", "error": "unsupported route"}}
	}`)

	_, err := normalizeOffers(envelope)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported route")
}

func TestParseLocalTime(t *testing.T) {
	parsed := parseLocalTime("2026-03-01T08:15:00")
	assert.Equal(t, time.Date(2026, 3, 1, 8, 15, 0, 0, time.UTC), parsed)

	assert.True(t, parseLocalTime("").IsZero())
	assert.True(t, parseLocalTime("garbage").IsZero())
}
