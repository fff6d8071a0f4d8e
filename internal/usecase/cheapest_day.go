package usecase

import (
	"context"
	"sort"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// CheapestDay implements FareSearchUseCase.CheapestDay. It resolves one
// sub-query per date in the inclusive window and produces two orderings
// over the same outcomes: a price-ascending fare list (ties broken by
// earliest date) and a date-ascending calendar that shows failed and
// fare-less dates explicitly.
func (uc *fareSearchUseCase) CheapestDay(ctx context.Context, q domain.CheapestDayQuery) (*domain.CheapestDayResult, error) {
	q.SetDefaults()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	dates := q.Dates()
	subs := make([]SubQuery, len(dates))
	for i, date := range dates {
		subs[i] = SubQuery{
			Key:  date,
			Spec: priceCheckSpec(q.Origin, q.Destination, date, q.Adults, q.MaxStops),
		}
	}

	outcomes, err := uc.coordinator.ResolveAll(ctx, subs)
	if err != nil {
		return nil, err
	}

	result := &domain.CheapestDayResult{
		Origin:      q.Origin,
		Destination: q.Destination,
		ByPrice:     make([]domain.DayFare, 0, len(outcomes)),
		Calendar:    make([]domain.CalendarEntry, 0, len(outcomes)),
		Counts:      countOutcomes(outcomes),
	}

	// Outcomes arrive in submission order, which is date-ascending, so the
	// calendar is built in a single pass.
	for _, out := range outcomes {
		entry := domain.CalendarEntry{
			Date:      out.Key,
			FromCache: out.FromCache,
		}
		if out.HasPrice() {
			price := out.Offer.Price.Amount
			entry.Price = &price
			entry.Currency = out.Offer.Price.Currency
			entry.Available = true

			result.ByPrice = append(result.ByPrice, domain.DayFare{
				Date:      out.Key,
				Price:     price,
				Currency:  out.Offer.Price.Currency,
				Stops:     out.Offer.Stops,
				FromCache: out.FromCache,
			})
		}
		result.Calendar = append(result.Calendar, entry)
	}

	sort.Slice(result.ByPrice, func(i, j int) bool {
		a, b := result.ByPrice[i], result.ByPrice[j]
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.Date < b.Date
	})

	if len(result.ByPrice) > 0 {
		cheapest := result.ByPrice[0]
		result.Cheapest = &cheapest
	}

	uc.log.Info().
		Str("origin", q.Origin).
		Str("destination", q.Destination).
		Int("days_searched", result.Counts.Searched).
		Int("cache_hits", result.Counts.CacheHits).
		Int("succeeded", result.Counts.Succeeded).
		Msg("Cheapest day search completed")

	return result, nil
}
