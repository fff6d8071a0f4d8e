package domain

import (
	"fmt"
	"time"
)

// Hard caps on fan-out width per orchestration entry point. These are the
// only backpressure mechanism: a request exceeding its cap is rejected
// outright before any upstream work starts.
const (
	// MaxCalendarDays is the widest date window a cheapest-day search accepts.
	MaxCalendarDays = 62

	// MaxRouteDestinations is the most candidate destinations a
	// cheapest-route search accepts.
	MaxRouteDestinations = 20

	// MaxFlexibilityDays is the widest one-sided flexibility window a
	// flexible-dates search accepts.
	MaxFlexibilityDays = 14

	// MaxBatchItems is the most items a batch search accepts.
	MaxBatchItems = 10
)

// CheapestDayQuery asks for the cheapest day to fly a route within an
// inclusive date window.
type CheapestDayQuery struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DateFrom is the first date of the window (YYYY-MM-DD, inclusive)
	DateFrom string `json:"dateFrom"`

	// DateTo is the last date of the window (YYYY-MM-DD, inclusive)
	DateTo string `json:"dateTo"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`

	// MaxStops limits the number of stops when set
	MaxStops *int `json:"maxStops,omitempty"`
}

// Validate checks the query bounds. The window must not be reversed and must
// span at most MaxCalendarDays dates.
func (q *CheapestDayQuery) Validate() error {
	if err := validateRoute(q.Origin, q.Destination); err != nil {
		return err
	}
	if err := validateDate("dateFrom", q.DateFrom); err != nil {
		return err
	}
	if err := validateDate("dateTo", q.DateTo); err != nil {
		return err
	}

	from, _ := time.Parse(DateLayout, q.DateFrom)
	to, _ := time.Parse(DateLayout, q.DateTo)
	if to.Before(from) {
		return fmt.Errorf("%w: dateTo %s is before dateFrom %s", ErrInvalidRange, q.DateTo, q.DateFrom)
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > MaxCalendarDays {
		return fmt.Errorf("%w: window spans %d days, maximum is %d", ErrInvalidRange, days, MaxCalendarDays)
	}

	return validateAdults(q.Adults)
}

// SetDefaults applies default values to empty optional fields.
func (q *CheapestDayQuery) SetDefaults() {
	if q.Adults == 0 {
		q.Adults = DefaultAdults
	}
}

// Dates enumerates the window as YYYY-MM-DD strings in ascending order.
// Validate must have accepted the query first.
func (q *CheapestDayQuery) Dates() []string {
	from, _ := time.Parse(DateLayout, q.DateFrom)
	to, _ := time.Parse(DateLayout, q.DateTo)

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// CheapestRouteQuery asks which of several candidate destinations is
// cheapest on a single date.
type CheapestRouteQuery struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destinations are the candidate arrival airports (IATA codes)
	Destinations []string `json:"destinations"`

	// Date is the departure date (YYYY-MM-DD)
	Date string `json:"date"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`

	// MaxPrice drops routes above this fare after resolution when set.
	// The upstream is never asked to filter; the cut happens post-cache.
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// Validate checks the query bounds.
func (q *CheapestRouteQuery) Validate() error {
	if q.Origin == "" || !airportCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Origin)
	}
	if len(q.Destinations) == 0 {
		return ErrEmptyDestinations
	}
	if len(q.Destinations) > MaxRouteDestinations {
		return fmt.Errorf("%w: got %d destinations, maximum is %d", ErrTooManyDestinations, len(q.Destinations), MaxRouteDestinations)
	}
	for _, dest := range q.Destinations {
		if !airportCodeRegex.MatchString(dest) {
			return fmt.Errorf("%w: destination %q is not a valid 3-letter IATA code", ErrInvalidRequest, dest)
		}
		if dest == q.Origin {
			return fmt.Errorf("%w: destination %q equals the origin", ErrInvalidRequest, dest)
		}
	}
	if err := validateDate("date", q.Date); err != nil {
		return err
	}
	if q.MaxPrice != nil && *q.MaxPrice <= 0 {
		return fmt.Errorf("%w: maxPrice must be positive", ErrInvalidRequest)
	}
	return validateAdults(q.Adults)
}

// SetDefaults applies default values to empty optional fields.
func (q *CheapestRouteQuery) SetDefaults() {
	if q.Adults == 0 {
		q.Adults = DefaultAdults
	}
}

// FlexibleDatesQuery asks for the cheapest day within a symmetric window
// around a target date.
type FlexibleDatesQuery struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Date is the target departure date (YYYY-MM-DD)
	Date string `json:"date"`

	// FlexibilityDays is the number of days searched on each side of the
	// target date (1..MaxFlexibilityDays)
	FlexibilityDays int `json:"flexibilityDays"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`
}

// Validate checks the query bounds.
func (q *FlexibleDatesQuery) Validate() error {
	if err := validateRoute(q.Origin, q.Destination); err != nil {
		return err
	}
	if err := validateDate("date", q.Date); err != nil {
		return err
	}
	if q.FlexibilityDays < 1 {
		return fmt.Errorf("%w: flexibilityDays must be at least 1", ErrInvalidRequest)
	}
	if q.FlexibilityDays > MaxFlexibilityDays {
		return fmt.Errorf("%w: got %d days, maximum is %d", ErrFlexibilityTooLarge, q.FlexibilityDays, MaxFlexibilityDays)
	}
	return validateAdults(q.Adults)
}

// SetDefaults applies default values to empty optional fields.
func (q *FlexibleDatesQuery) SetDefaults() {
	if q.Adults == 0 {
		q.Adults = DefaultAdults
	}
}

// Window computes the [target-flex, target+flex] date window. Validate must
// have accepted the query first.
func (q *FlexibleDatesQuery) Window() (dateFrom, dateTo string) {
	target, _ := time.Parse(DateLayout, q.Date)
	from := target.AddDate(0, 0, -q.FlexibilityDays)
	to := target.AddDate(0, 0, q.FlexibilityDays)
	return from.Format(DateLayout), to.Format(DateLayout)
}

// PriceCheckQuery asks for the cheapest fare on a single route and date.
type PriceCheckQuery struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Date is the departure date (YYYY-MM-DD)
	Date string `json:"date"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`

	// MaxStops limits the number of stops when set
	MaxStops *int `json:"maxStops,omitempty"`
}

// Validate checks the query.
func (q *PriceCheckQuery) Validate() error {
	if err := validateRoute(q.Origin, q.Destination); err != nil {
		return err
	}
	if err := validateDate("date", q.Date); err != nil {
		return err
	}
	return validateAdults(q.Adults)
}

// SetDefaults applies default values to empty optional fields.
func (q *PriceCheckQuery) SetDefaults() {
	if q.Adults == 0 {
		q.Adults = DefaultAdults
	}
}

// BatchSearchItem is one user-supplied request inside a batch search. Items
// are validated independently: a malformed item becomes a tagged failure at
// its index instead of rejecting the whole batch.
type BatchSearchItem struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Date is the departure date (YYYY-MM-DD)
	Date string `json:"date"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`
}

// Validate checks a single batch item.
func (it *BatchSearchItem) Validate() error {
	if err := validateRoute(it.Origin, it.Destination); err != nil {
		return err
	}
	if err := validateDate("date", it.Date); err != nil {
		return err
	}
	return validateAdults(it.Adults)
}

// SetDefaults applies default values to empty optional fields.
func (it *BatchSearchItem) SetDefaults() {
	if it.Adults == 0 {
		it.Adults = DefaultAdults
	}
}

// validateRoute checks an origin/destination pair.
func validateRoute(origin, destination string) error {
	if origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, origin)
	}
	if destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, destination)
	}
	if origin == destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	return nil
}

// validateAdults checks a passenger count shared by all query types.
func validateAdults(adults int) error {
	if adults < 0 {
		return fmt.Errorf("%w: adults must be non-negative", ErrInvalidRequest)
	}
	if adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}
	return nil
}
