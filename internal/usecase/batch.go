package usecase

import (
	"context"
	"fmt"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// BatchSearch implements FareSearchUseCase.BatchSearch. The batch size is
// bounded before any item is resolved. Items are then validated
// independently: a malformed item becomes a tagged failure at its index
// while the valid remainder is resolved through the fan-out coordinator
// under the same cache key scheme as PriceCheck.
func (uc *fareSearchUseCase) BatchSearch(ctx context.Context, items []domain.BatchSearchItem) (*domain.BatchSearchResult, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if len(items) > domain.MaxBatchItems {
		return nil, fmt.Errorf("%w: got %d items, maximum is %d", domain.ErrTooManyBatchItems, len(items), domain.MaxBatchItems)
	}

	results := make([]domain.BatchItemResult, len(items))

	// Validate every item up front; only the valid subset fans out.
	var subs []SubQuery
	var subIndex []int
	for i := range items {
		item := items[i]
		item.SetDefaults()

		results[i] = domain.BatchItemResult{
			Index:       i,
			Origin:      item.Origin,
			Destination: item.Destination,
			Date:        item.Date,
		}

		if err := item.Validate(); err != nil {
			results[i].Error = err.Error()
			continue
		}

		subs = append(subs, SubQuery{
			Key:  batchKey(item),
			Spec: priceCheckSpec(item.Origin, item.Destination, item.Date, item.Adults, nil),
		})
		subIndex = append(subIndex, i)
	}

	if len(subs) > 0 {
		outcomes, err := uc.coordinator.ResolveAll(ctx, subs)
		if err != nil {
			return nil, err
		}

		for j, out := range outcomes {
			i := subIndex[j]
			if !out.Success {
				results[i].Error = out.Err.Error()
				continue
			}
			results[i].Success = true
			results[i].Offer = out.Offer
			results[i].FromCache = out.FromCache
		}
	}

	successful := 0
	for _, r := range results {
		if r.Success {
			successful++
		}
	}

	uc.log.Info().
		Int("items", len(items)).
		Int("successful", successful).
		Msg("Batch search completed")

	return &domain.BatchSearchResult{
		Results:    results,
		Successful: successful,
	}, nil
}

// batchKey labels a batch sub-query with its route and date.
func batchKey(item domain.BatchSearchItem) string {
	return fmt.Sprintf("%s-%s:%s", item.Origin, item.Destination, item.Date)
}
