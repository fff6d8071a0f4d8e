package usecase

import (
	"context"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// FlexibleDates implements FareSearchUseCase.FlexibleDates. It is a
// convenience layer over CheapestDay: it computes the symmetric
// [target-flex, target+flex] window, delegates the search, and augments the
// result with the original target date and flexibility.
func (uc *fareSearchUseCase) FlexibleDates(ctx context.Context, q domain.FlexibleDatesQuery) (*domain.FlexibleDatesResult, error) {
	q.SetDefaults()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	dateFrom, dateTo := q.Window()
	dayResult, err := uc.CheapestDay(ctx, domain.CheapestDayQuery{
		Origin:      q.Origin,
		Destination: q.Destination,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		Adults:      q.Adults,
	})
	if err != nil {
		return nil, err
	}

	return &domain.FlexibleDatesResult{
		CheapestDayResult: *dayResult,
		TargetDate:        q.Date,
		FlexibilityDays:   q.FlexibilityDays,
	}, nil
}
