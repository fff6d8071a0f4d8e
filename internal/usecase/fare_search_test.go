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

func TestNewFareSearchUseCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := domain.NewMockSearchPort(ctrl)

	tests := []struct {
		name   string
		config *Config
	}{
		{"default config", nil},
		{"custom config", &Config{MaxFanOut: 100, MaxConcurrent: 8}},
		{"partial config falls back to defaults", &Config{MaxFanOut: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewFareSearchUseCase(upstream, newTestCache(t), tt.config, zerolog.Nop())
			require.NotNil(t, uc)
		})
	}
}

func TestPriceCheck_ReturnsCheapestOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := domain.NewMockSearchPort(ctrl)
	upstream.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, spec domain.SearchSpec) ([]domain.Offer, error) {
			assert.Equal(t, domain.KindPriceCheck, spec.Kind)
			assert.Equal(t, domain.DefaultAdults, spec.Adults)
			assert.Equal(t, domain.DefaultCabin, spec.Cabin)
			offers := append(offersAt(310), offersAt(260)...)
			return offers, nil
		},
	).Times(1)

	uc := newTestUseCase(t, upstream)

	result, err := uc.PriceCheck(context.Background(), domain.PriceCheckQuery{
		Origin:      "SFO",
		Destination: "JFK",
		Date:        "2026-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "SFO", result.Origin)
	assert.Equal(t, "JFK", result.Destination)
	assert.Equal(t, "2026-03-01", result.Date)
	assert.False(t, result.FromCache)
	require.NotNil(t, result.Offer)
	assert.Equal(t, 260.0, result.Offer.Price.Amount)
}

func TestPriceCheck_UpstreamFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamErr := errors.New("gateway down")
	upstream := domain.NewMockSearchPort(ctrl)
	upstream.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, upstreamErr).Times(1)

	uc := newTestUseCase(t, upstream)

	_, err := uc.PriceCheck(context.Background(), domain.PriceCheckQuery{
		Origin:      "SFO",
		Destination: "JFK",
		Date:        "2026-03-01",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, upstreamErr)

	var ue *domain.UpstreamError
	assert.ErrorAs(t, err, &ue)
}

func TestPriceCheck_SecondCheckServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := domain.NewMockSearchPort(ctrl)
	upstream.EXPECT().Search(gomock.Any(), gomock.Any()).Return(offersAt(260), nil).Times(1)

	uc := newTestUseCase(t, upstream)
	query := domain.PriceCheckQuery{
		Origin:      "SFO",
		Destination: "JFK",
		Date:        "2026-03-01",
	}

	first, err := uc.PriceCheck(context.Background(), query)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := uc.PriceCheck(context.Background(), query)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
}

func TestPriceCheck_WarmedByCalendarSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prices := map[string]float64{
		"2026-03-01": 310,
		"2026-03-02": 280,
	}
	uc := newTestUseCase(t, pricedUpstream(ctrl, prices))

	// The calendar sweep resolves both dates live.
	_, err := uc.CheapestDay(context.Background(), domain.CheapestDayQuery{
		Origin:      "SFO",
		Destination: "JFK",
		DateFrom:    "2026-03-01",
		DateTo:      "2026-03-02",
	})
	require.NoError(t, err)

	// A later price check for a swept date never touches the upstream:
	// both operations share the same cache key scheme.
	result, err := uc.PriceCheck(context.Background(), domain.PriceCheckQuery{
		Origin:      "SFO",
		Destination: "JFK",
		Date:        "2026-03-02",
	})
	require.NoError(t, err)
	assert.True(t, result.FromCache)
	require.NotNil(t, result.Offer)
	assert.Equal(t, 280.0, result.Offer.Price.Amount)
}

func TestPriceCheck_RejectsInvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUseCase(t, domain.NewMockSearchPort(ctrl))

	_, err := uc.PriceCheck(context.Background(), domain.PriceCheckQuery{
		Origin:      "SFO",
		Destination: "SFO",
		Date:        "2026-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestCacheStatsAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := domain.NewMockSearchPort(ctrl)
	upstream.EXPECT().Search(gomock.Any(), gomock.Any()).Return(offersAt(260), nil).Times(2)

	uc := newTestUseCase(t, upstream)
	query := domain.PriceCheckQuery{
		Origin:      "SFO",
		Destination: "JFK",
		Date:        "2026-03-01",
	}

	_, err := uc.PriceCheck(context.Background(), query)
	require.NoError(t, err)

	stats := uc.CacheStats()
	assert.Equal(t, 1, stats.EntryCount)
	assert.Equal(t, uint64(1), stats.Misses)

	assert.Equal(t, 1, uc.CacheClear())
	assert.Equal(t, 0, uc.CacheStats().EntryCount)

	// After the clear the same query goes upstream again.
	result, err := uc.PriceCheck(context.Background(), query)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
}
