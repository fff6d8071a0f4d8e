// Package http provides the HTTP handler layer for the fare search API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// CheapestDayRequest represents the request body for a cheapest-day search.
type CheapestDayRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "SFO")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination"`

	// DateFrom is the first date of the window in YYYY-MM-DD format (inclusive)
	DateFrom string `json:"dateFrom"`

	// DateTo is the last date of the window in YYYY-MM-DD format (inclusive)
	DateTo string `json:"dateTo"`

	// Adults is the number of adult passengers (optional, default 1)
	Adults int `json:"adults,omitempty"`

	// MaxStops limits the number of stops (optional)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`
}

// Validate validates the request and returns any validation errors. Window
// width and passenger bounds are enforced in the domain layer; this pass
// checks field shape and normalizes airport codes to uppercase.
func (r *CheapestDayRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirportCode(errs, "origin", &r.Origin)
	validateAirportCode(errs, "destination", &r.Destination)
	validateDateField(errs, "dateFrom", r.DateFrom)
	validateDateField(errs, "dateTo", r.DateTo)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToQuery converts the request to a domain query.
func (r *CheapestDayRequest) ToQuery() domain.CheapestDayQuery {
	return domain.CheapestDayQuery{
		Origin:      r.Origin,
		Destination: r.Destination,
		DateFrom:    r.DateFrom,
		DateTo:      r.DateTo,
		Adults:      r.Adults,
		MaxStops:    r.MaxStops,
	}
}

// CheapestRouteRequest represents the request body for a cheapest-route search.
type CheapestRouteRequest struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destinations are the candidate arrival airports (IATA codes)
	Destinations []string `json:"destinations"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// Adults is the number of adult passengers (optional, default 1)
	Adults int `json:"adults,omitempty"`

	// MaxPrice drops routes above this fare (optional)
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"500"`
}

// Validate validates the request and returns any validation errors.
func (r *CheapestRouteRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirportCode(errs, "origin", &r.Origin)
	if len(r.Destinations) == 0 {
		errs.Add("destinations", "at least one destination is required")
	}
	for i := range r.Destinations {
		r.Destinations[i] = strings.ToUpper(r.Destinations[i])
	}
	validateDateField(errs, "date", r.Date)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToQuery converts the request to a domain query.
func (r *CheapestRouteRequest) ToQuery() domain.CheapestRouteQuery {
	return domain.CheapestRouteQuery{
		Origin:       r.Origin,
		Destinations: r.Destinations,
		Date:         r.Date,
		Adults:       r.Adults,
		MaxPrice:     r.MaxPrice,
	}
}

// FlexibleDatesRequest represents the request body for a flexible-dates search.
type FlexibleDatesRequest struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Date is the target departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// FlexibilityDays is the number of days searched on each side of the target date (1-14)
	FlexibilityDays int `json:"flexibilityDays"`

	// Adults is the number of adult passengers (optional, default 1)
	Adults int `json:"adults,omitempty"`
}

// Validate validates the request and returns any validation errors.
func (r *FlexibleDatesRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirportCode(errs, "origin", &r.Origin)
	validateAirportCode(errs, "destination", &r.Destination)
	validateDateField(errs, "date", r.Date)
	if r.FlexibilityDays < 1 {
		errs.Add("flexibilityDays", "flexibilityDays must be at least 1")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToQuery converts the request to a domain query.
func (r *FlexibleDatesRequest) ToQuery() domain.FlexibleDatesQuery {
	return domain.FlexibleDatesQuery{
		Origin:          r.Origin,
		Destination:     r.Destination,
		Date:            r.Date,
		FlexibilityDays: r.FlexibilityDays,
		Adults:          r.Adults,
	}
}

// PriceCheckRequest represents the request body for a single price check.
type PriceCheckRequest struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// Adults is the number of adult passengers (optional, default 1)
	Adults int `json:"adults,omitempty"`

	// MaxStops limits the number of stops (optional)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`
}

// Validate validates the request and returns any validation errors.
func (r *PriceCheckRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirportCode(errs, "origin", &r.Origin)
	validateAirportCode(errs, "destination", &r.Destination)
	validateDateField(errs, "date", r.Date)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToQuery converts the request to a domain query.
func (r *PriceCheckRequest) ToQuery() domain.PriceCheckQuery {
	return domain.PriceCheckQuery{
		Origin:      r.Origin,
		Destination: r.Destination,
		Date:        r.Date,
		Adults:      r.Adults,
		MaxStops:    r.MaxStops,
	}
}

// BatchSearchRequest represents the request body for a batch search.
// Individual items are not validated here: a malformed item is reported as
// a failure at its index in the response instead of rejecting the batch.
type BatchSearchRequest struct {
	// Searches are the individual single-day searches to resolve (max 10)
	Searches []BatchSearchItemRequest `json:"searches"`
}

// BatchSearchItemRequest is one search inside a batch request.
type BatchSearchItemRequest struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// Adults is the number of adult passengers (optional, default 1)
	Adults int `json:"adults,omitempty"`
}

// Normalize uppercases airport codes on all items in place.
func (r *BatchSearchRequest) Normalize() {
	for i := range r.Searches {
		r.Searches[i].Origin = strings.ToUpper(r.Searches[i].Origin)
		r.Searches[i].Destination = strings.ToUpper(r.Searches[i].Destination)
	}
}

// ToItems converts the request to domain batch items.
func (r *BatchSearchRequest) ToItems() []domain.BatchSearchItem {
	items := make([]domain.BatchSearchItem, len(r.Searches))
	for i, s := range r.Searches {
		items[i] = domain.BatchSearchItem{
			Origin:      s.Origin,
			Destination: s.Destination,
			Date:        s.Date,
			Adults:      s.Adults,
		}
	}
	return items
}

// validateAirportCode checks and normalizes a single IATA code field.
func validateAirportCode(errs *ValidationErrors, field string, code *string) {
	if *code == "" {
		errs.Add(field, field+" is required")
		return
	}

	normalized := strings.ToUpper(*code)
	if !airportCodePattern.MatchString(normalized) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return
	}
	*code = normalized
}

// validateDateField checks a single YYYY-MM-DD date field.
func validateDateField(errs *ValidationErrors, field, value string) {
	if value == "" {
		errs.Add(field, field+" is required")
		return
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}
