package usecase

import (
	"context"
	"sort"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// CheapestRoute implements FareSearchUseCase.CheapestRoute. It resolves one
// sub-query per candidate destination on a single date. Destinations that
// fail upstream are silently excluded from the route list (they still count
// in Counts.Searched); the optional maxPrice cut is applied after
// resolution, never pushed to the upstream.
func (uc *fareSearchUseCase) CheapestRoute(ctx context.Context, q domain.CheapestRouteQuery) (*domain.CheapestRouteResult, error) {
	q.SetDefaults()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	subs := make([]SubQuery, len(q.Destinations))
	for i, dest := range q.Destinations {
		subs[i] = SubQuery{
			Key:  dest,
			Spec: priceCheckSpec(q.Origin, dest, q.Date, q.Adults, nil),
		}
	}

	outcomes, err := uc.coordinator.ResolveAll(ctx, subs)
	if err != nil {
		return nil, err
	}

	result := &domain.CheapestRouteResult{
		Origin: q.Origin,
		Date:   q.Date,
		Routes: make([]domain.RouteFare, 0, len(outcomes)),
		Counts: countOutcomes(outcomes),
	}

	for _, out := range outcomes {
		if !out.HasPrice() {
			continue
		}
		price := out.Offer.Price.Amount
		if q.MaxPrice != nil && price > *q.MaxPrice {
			continue
		}
		result.Routes = append(result.Routes, domain.RouteFare{
			Destination: out.Key,
			Price:       price,
			Currency:    out.Offer.Price.Currency,
			Stops:       out.Offer.Stops,
			FromCache:   out.FromCache,
		})
	}

	// Stable sort keeps the caller's destination order on price ties.
	sort.SliceStable(result.Routes, func(i, j int) bool {
		return result.Routes[i].Price < result.Routes[j].Price
	})

	if len(result.Routes) > 0 {
		cheapest := result.Routes[0]
		result.Cheapest = &cheapest
	}

	uc.log.Info().
		Str("origin", q.Origin).
		Str("date", q.Date).
		Int("destinations_searched", result.Counts.Searched).
		Int("routes_found", len(result.Routes)).
		Int("cache_hits", result.Counts.CacheHits).
		Msg("Cheapest route search completed")

	return result, nil
}
