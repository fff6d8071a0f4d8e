package domain

// DayFare is one resolved date in a cheapest-day search.
type DayFare struct {
	// Date is the departure date (YYYY-MM-DD)
	Date string `json:"date"`

	// Price is the cheapest fare found for this date
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// Stops is the stop count of the cheapest offer
	Stops int `json:"stops"`

	// FromCache reports whether this date resolved from the response cache
	FromCache bool `json:"fromCache"`
}

// CalendarEntry is one date in the complete per-date calendar. Unlike the
// price-sorted fare list, the calendar includes dates that failed or found
// no fare, with a null price.
type CalendarEntry struct {
	// Date is the departure date (YYYY-MM-DD)
	Date string `json:"date"`

	// Price is the cheapest fare for this date, or null when unavailable
	Price *float64 `json:"price"`

	// Currency is the ISO 4217 currency code (empty when unavailable)
	Currency string `json:"currency,omitempty"`

	// Available reports whether a fare was found for this date
	Available bool `json:"available"`

	// FromCache reports whether this date resolved from the response cache
	FromCache bool `json:"fromCache"`
}

// SearchCounts is the bookkeeping shared by all aggregate results.
type SearchCounts struct {
	// Searched is the number of sub-queries issued
	Searched int `json:"searched"`

	// CacheHits is the number of sub-queries answered from the cache
	CacheHits int `json:"cacheHits"`

	// Succeeded is the number of sub-queries that resolved without error
	Succeeded int `json:"succeeded"`
}

// CheapestDayResult is the aggregate answer to a cheapest-day search. It
// carries two orderings over the same data: ByPrice sorted ascending by
// price (ties broken by earliest date) and Calendar sorted by date with
// failed dates shown explicitly.
type CheapestDayResult struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Cheapest is the lowest-priced day, or null when every date failed
	Cheapest *DayFare `json:"cheapest"`

	// ByPrice lists days with a defined fare, cheapest first
	ByPrice []DayFare `json:"byPrice"`

	// Calendar lists every searched date ascending, failures included
	Calendar []CalendarEntry `json:"calendar"`

	// Counts carries the search bookkeeping
	Counts SearchCounts `json:"counts"`
}

// RouteFare is one resolved destination in a cheapest-route search.
type RouteFare struct {
	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Price is the cheapest fare found for this destination
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// Stops is the stop count of the cheapest offer
	Stops int `json:"stops"`

	// FromCache reports whether this destination resolved from the cache
	FromCache bool `json:"fromCache"`
}

// CheapestRouteResult is the aggregate answer to a cheapest-route search.
// Failed destinations are excluded from Routes (they still count in
// Counts.Searched); this asymmetry with the calendar view is intentional.
type CheapestRouteResult struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Date is the departure date (YYYY-MM-DD)
	Date string `json:"date"`

	// Cheapest is the lowest-priced destination, or null when none resolved
	Cheapest *RouteFare `json:"cheapest"`

	// Routes lists resolved destinations, cheapest first. Ties keep the
	// caller's destination order.
	Routes []RouteFare `json:"routes"`

	// Counts carries the search bookkeeping; Searched is the number of
	// destinations asked for, which may exceed len(Routes)
	Counts SearchCounts `json:"counts"`
}

// FlexibleDatesResult augments a cheapest-day result with the original
// target date and the flexibility that produced the window.
type FlexibleDatesResult struct {
	CheapestDayResult

	// TargetDate is the date the caller originally asked about
	TargetDate string `json:"targetDate"`

	// FlexibilityDays is the one-sided width of the searched window
	FlexibilityDays int `json:"flexibilityDays"`
}

// BatchItemResult is the tagged outcome of one batch search item, reported
// at the item's original index.
type BatchItemResult struct {
	// Index is the position of the item in the submitted batch
	Index int `json:"index"`

	// Origin echoes the requested departure airport
	Origin string `json:"origin"`

	// Destination echoes the requested arrival airport
	Destination string `json:"destination"`

	// Date echoes the requested departure date
	Date string `json:"date"`

	// Success reports whether this item resolved to a fare
	Success bool `json:"success"`

	// Offer is the cheapest offer found, when successful
	Offer *Offer `json:"offer,omitempty"`

	// FromCache reports whether this item resolved from the cache
	FromCache bool `json:"fromCache"`

	// Error describes why the item failed (validation or upstream)
	Error string `json:"error,omitempty"`
}

// BatchSearchResult is the aggregate answer to a batch search. Results
// preserve input index order.
type BatchSearchResult struct {
	// Results holds one entry per submitted item, in input order
	Results []BatchItemResult `json:"results"`

	// Successful is the number of items that resolved to a fare
	Successful int `json:"successful"`
}

// PriceCheckResult is the answer to a single-day price check.
type PriceCheckResult struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Date is the departure date (YYYY-MM-DD)
	Date string `json:"date"`

	// Offer is the cheapest offer found, or null when none was
	Offer *Offer `json:"offer"`

	// FromCache reports whether the result came from the response cache
	FromCache bool `json:"fromCache"`
}
