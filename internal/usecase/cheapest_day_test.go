package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// pricedUpstream returns a mock upstream that serves one offer per date from
// the given price table. Dates absent from the table fail with an error.
func pricedUpstream(ctrl *gomock.Controller, prices map[string]float64) *domain.MockSearchPort {
	upstream := domain.NewMockSearchPort(ctrl)
	upstream.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, spec domain.SearchSpec) ([]domain.Offer, error) {
			price, ok := prices[spec.Date]
			if !ok {
				return nil, errors.New("no fares for " + spec.Date)
			}
			return offersAt(price), nil
		},
	).AnyTimes()
	return upstream
}

func newTestUseCase(t *testing.T, upstream domain.SearchPort) FareSearchUseCase {
	t.Helper()
	return NewFareSearchUseCase(upstream, newTestCache(t), nil, zerolog.Nop())
}

func TestCheapestDay_FindsCheapestInWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prices := map[string]float64{
		"2026-03-01": 310,
		"2026-03-02": 280,
		"2026-03-03": 295,
		"2026-03-04": 260,
		"2026-03-05": 300,
	}
	uc := newTestUseCase(t, pricedUpstream(ctrl, prices))

	result, err := uc.CheapestDay(context.Background(), domain.CheapestDayQuery{
		Origin:      "SFO",
		Destination: "JFK",
		DateFrom:    "2026-03-01",
		DateTo:      "2026-03-05",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Cheapest)
	assert.Equal(t, "2026-03-04", result.Cheapest.Date)
	assert.Equal(t, 260.0, result.Cheapest.Price)

	require.Len(t, result.Calendar, 5)
	for i, date := range []string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05"} {
		assert.Equal(t, date, result.Calendar[i].Date, "calendar must be date-ascending")
		assert.True(t, result.Calendar[i].Available)
	}

	require.Len(t, result.ByPrice, 5)
	assert.Equal(t, "2026-03-04", result.ByPrice[0].Date)
	assert.Equal(t, "2026-03-02", result.ByPrice[1].Date)
	assert.Equal(t, "2026-03-03", result.ByPrice[2].Date)
	assert.Equal(t, "2026-03-05", result.ByPrice[3].Date)
	assert.Equal(t, "2026-03-01", result.ByPrice[4].Date)

	assert.Equal(t, 5, result.Counts.Searched)
	assert.Equal(t, 5, result.Counts.Succeeded)
	assert.Equal(t, 0, result.Counts.CacheHits)
}

func TestCheapestDay_PriceTieBreaksOnEarlierDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prices := map[string]float64{
		"2026-03-01": 300,
		"2026-03-02": 250,
		"2026-03-03": 250,
	}
	uc := newTestUseCase(t, pricedUpstream(ctrl, prices))

	result, err := uc.CheapestDay(context.Background(), domain.CheapestDayQuery{
		Origin:      "SFO",
		Destination: "JFK",
		DateFrom:    "2026-03-01",
		DateTo:      "2026-03-03",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Cheapest)
	assert.Equal(t, "2026-03-02", result.Cheapest.Date)
}

func TestCheapestDay_FailedDatesStayInCalendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 2026-03-02 is missing from the table, so it fails upstream.
	prices := map[string]float64{
		"2026-03-01": 310,
		"2026-03-03": 290,
	}
	uc := newTestUseCase(t, pricedUpstream(ctrl, prices))

	result, err := uc.CheapestDay(context.Background(), domain.CheapestDayQuery{
		Origin:      "SFO",
		Destination: "JFK",
		DateFrom:    "2026-03-01",
		DateTo:      "2026-03-03",
	})
	require.NoError(t, err, "individual date failures must not fail the search")

	// The calendar keeps the failed date visible with no price.
	require.Len(t, result.Calendar, 3)
	failed := result.Calendar[1]
	assert.Equal(t, "2026-03-02", failed.Date)
	assert.False(t, failed.Available)
	assert.Nil(t, failed.Price)

	// The price-sorted list excludes it.
	require.Len(t, result.ByPrice, 2)
	assert.Equal(t, 3, result.Counts.Searched)
	assert.Equal(t, 2, result.Counts.Succeeded)
}

func TestCheapestDay_AllDatesFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUseCase(t, pricedUpstream(ctrl, nil))

	result, err := uc.CheapestDay(context.Background(), domain.CheapestDayQuery{
		Origin:      "SFO",
		Destination: "JFK",
		DateFrom:    "2026-03-01",
		DateTo:      "2026-03-03",
	})
	require.NoError(t, err)

	assert.Nil(t, result.Cheapest)
	assert.Empty(t, result.ByPrice)
	assert.Len(t, result.Calendar, 3)
	assert.Equal(t, 0, result.Counts.Succeeded)
}

func TestCheapestDay_RejectsInvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The upstream must never be touched for an invalid query.
	upstream := domain.NewMockSearchPort(ctrl)
	uc := newTestUseCase(t, upstream)

	_, err := uc.CheapestDay(context.Background(), domain.CheapestDayQuery{
		Origin:      "SFO",
		Destination: "JFK",
		DateFrom:    "2026-03-05",
		DateTo:      "2026-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestCheapestDay_SecondSearchServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prices := map[string]float64{
		"2026-03-01": 310,
		"2026-03-02": 280,
	}

	// Each date resolves upstream exactly once across both searches.
	upstream := domain.NewMockSearchPort(ctrl)
	upstream.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, spec domain.SearchSpec) ([]domain.Offer, error) {
			return offersAt(prices[spec.Date]), nil
		},
	).Times(2)

	uc := newTestUseCase(t, upstream)
	query := domain.CheapestDayQuery{
		Origin:      "SFO",
		Destination: "JFK",
		DateFrom:    "2026-03-01",
		DateTo:      "2026-03-02",
	}

	first, err := uc.CheapestDay(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Counts.CacheHits)

	second, err := uc.CheapestDay(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Counts.CacheHits)
	require.NotNil(t, second.Cheapest)
	assert.Equal(t, 280.0, second.Cheapest.Price)
	assert.True(t, second.Cheapest.FromCache)
}
