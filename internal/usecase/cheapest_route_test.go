package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// routePricedUpstream serves one offer per destination from the given price
// table. Destinations absent from the table fail upstream.
func routePricedUpstream(ctrl *gomock.Controller, prices map[string]float64) *domain.MockSearchPort {
	upstream := domain.NewMockSearchPort(ctrl)
	upstream.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, spec domain.SearchSpec) ([]domain.Offer, error) {
			price, ok := prices[spec.Destination]
			if !ok {
				return nil, errors.New("no fares to " + spec.Destination)
			}
			offers := offersAt(price)
			offers[0].Destination = spec.Destination
			return offers, nil
		},
	).AnyTimes()
	return upstream
}

func TestCheapestRoute_RanksDestinationsByPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prices := map[string]float64{
		"JFK": 310,
		"BOS": 260,
		"ORD": 295,
	}
	uc := newTestUseCase(t, routePricedUpstream(ctrl, prices))

	result, err := uc.CheapestRoute(context.Background(), domain.CheapestRouteQuery{
		Origin:       "SFO",
		Destinations: []string{"JFK", "BOS", "ORD"},
		Date:         "2026-03-01",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Cheapest)
	assert.Equal(t, "BOS", result.Cheapest.Destination)
	assert.Equal(t, 260.0, result.Cheapest.Price)

	require.Len(t, result.Routes, 3)
	assert.Equal(t, "BOS", result.Routes[0].Destination)
	assert.Equal(t, "ORD", result.Routes[1].Destination)
	assert.Equal(t, "JFK", result.Routes[2].Destination)
}

func TestCheapestRoute_PriceTieKeepsInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prices := map[string]float64{
		"JFK": 300,
		"BOS": 300,
		"ORD": 250,
	}
	uc := newTestUseCase(t, routePricedUpstream(ctrl, prices))

	result, err := uc.CheapestRoute(context.Background(), domain.CheapestRouteQuery{
		Origin:       "SFO",
		Destinations: []string{"JFK", "BOS", "ORD"},
		Date:         "2026-03-01",
	})
	require.NoError(t, err)

	require.Len(t, result.Routes, 3)
	assert.Equal(t, "ORD", result.Routes[0].Destination)
	assert.Equal(t, "JFK", result.Routes[1].Destination, "ties keep the caller's destination order")
	assert.Equal(t, "BOS", result.Routes[2].Destination)
}

func TestCheapestRoute_FailedDestinationsSilentlyExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// ORD fails upstream: it vanishes from the route list but still counts
	// as searched.
	prices := map[string]float64{
		"JFK": 310,
		"BOS": 260,
	}
	uc := newTestUseCase(t, routePricedUpstream(ctrl, prices))

	result, err := uc.CheapestRoute(context.Background(), domain.CheapestRouteQuery{
		Origin:       "SFO",
		Destinations: []string{"JFK", "BOS", "ORD"},
		Date:         "2026-03-01",
	})
	require.NoError(t, err)

	require.Len(t, result.Routes, 2)
	for _, route := range result.Routes {
		assert.NotEqual(t, "ORD", route.Destination)
	}
	assert.Equal(t, 3, result.Counts.Searched)
	assert.Equal(t, 2, result.Counts.Succeeded)
}

func TestCheapestRoute_MaxPriceFiltersAfterResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prices := map[string]float64{
		"JFK": 310,
		"BOS": 260,
		"ORD": 295,
	}
	uc := newTestUseCase(t, routePricedUpstream(ctrl, prices))

	result, err := uc.CheapestRoute(context.Background(), domain.CheapestRouteQuery{
		Origin:       "SFO",
		Destinations: []string{"JFK", "BOS", "ORD"},
		Date:         "2026-03-01",
		MaxPrice:     floatPtr(300),
	})
	require.NoError(t, err)

	require.Len(t, result.Routes, 2)
	assert.Equal(t, "BOS", result.Routes[0].Destination)
	assert.Equal(t, "ORD", result.Routes[1].Destination)

	// The cut happens after resolution; every destination was still searched.
	assert.Equal(t, 3, result.Counts.Searched)
	assert.Equal(t, 3, result.Counts.Succeeded)
}

func TestCheapestRoute_AllDestinationsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUseCase(t, routePricedUpstream(ctrl, nil))

	result, err := uc.CheapestRoute(context.Background(), domain.CheapestRouteQuery{
		Origin:       "SFO",
		Destinations: []string{"JFK", "BOS"},
		Date:         "2026-03-01",
	})
	require.NoError(t, err)

	assert.Nil(t, result.Cheapest)
	assert.Empty(t, result.Routes)
	assert.Equal(t, 2, result.Counts.Searched)
}

func TestCheapestRoute_RejectsBadQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUseCase(t, domain.NewMockSearchPort(ctrl))

	tests := []struct {
		name    string
		query   domain.CheapestRouteQuery
		wantErr error
	}{
		{
			name: "no destinations",
			query: domain.CheapestRouteQuery{
				Origin: "SFO",
				Date:   "2026-03-01",
			},
			wantErr: domain.ErrEmptyDestinations,
		},
		{
			name: "too many destinations",
			query: domain.CheapestRouteQuery{
				Origin: "SFO",
				Destinations: []string{
					"AAA", "AAB", "AAC", "AAD", "AAE", "AAF", "AAG",
					"AAH", "AAI", "AAJ", "AAK", "AAL", "AAM", "AAN",
					"AAO", "AAP", "AAQ", "AAR", "AAS", "AAT", "AAU",
				},
				Date: "2026-03-01",
			},
			wantErr: domain.ErrTooManyDestinations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CheapestRoute(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func floatPtr(v float64) *float64 { return &v }
