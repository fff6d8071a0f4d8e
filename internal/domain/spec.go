package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SearchKind distinguishes the different upstream search shapes. The kind is
// part of every cache key so that searches with coinciding routes and dates
// can never collide across kinds.
type SearchKind string

const (
	// KindPriceCheck is a single-day one-way cheapest-fare query. All fan-out
	// entry points resolve their sub-queries under this kind, so a calendar
	// sweep warms the cache for later individual price checks and vice versa.
	KindPriceCheck SearchKind = "price"

	// KindOneWay is a full one-way itinerary search.
	KindOneWay SearchKind = "oneway"

	// KindRoundTrip is a round-trip itinerary search.
	KindRoundTrip SearchKind = "roundtrip"
)

// Default values applied by SearchSpec.SetDefaults.
const (
	DefaultAdults = 1
	DefaultCabin  = "economy"
	DefaultLimit  = 10
)

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validCabins defines the allowed cabin classes.
var validCabins = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
}

// SearchSpec is an immutable description of one unit of upstream search work:
// a single route on a single date for a fixed passenger mix. Orchestration
// entry points create one spec per sub-query and drop it once its outcome is
// recorded. Two specs with identical normalized fields produce the same
// cache key.
type SearchSpec struct {
	// Kind tags the search shape (price check, one-way, round-trip)
	Kind SearchKind `json:"kind"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// ReturnDate is the inbound date for round trips (YYYY-MM-DD, optional)
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers
	Adults int `json:"adults"`

	// Children is the number of child passengers
	Children int `json:"children"`

	// Infants is the number of infant passengers
	Infants int `json:"infants"`

	// Cabin is the cabin class (economy, premium_economy, business, first)
	Cabin string `json:"cabin"`

	// MaxStops limits the number of stops when set (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty"`

	// MaxPrice caps the fare asked of the upstream when set
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// Limit is the maximum number of offers requested from the upstream.
	// It shapes the response size only and is NOT part of the cache key.
	Limit int `json:"limit"`
}

// CacheKey derives the deterministic cache key for this spec. The key covers
// every field that changes what the upstream returns: kind, route, dates,
// passenger mix, cabin, and the stop/price constraints. Result-shaping
// fields (Limit) are deliberately excluded; the cache stores the upstream
// response and shaping happens after the cache.
func (s SearchSpec) CacheKey() string {
	var b strings.Builder
	b.WriteString(string(s.Kind))
	b.WriteByte(':')
	b.WriteString(s.Origin)
	b.WriteByte(':')
	b.WriteString(s.Destination)
	b.WriteByte(':')
	b.WriteString(s.Date)
	if s.ReturnDate != "" {
		b.WriteByte(':')
		b.WriteString(s.ReturnDate)
	}
	fmt.Fprintf(&b, ":a%dc%di%d:%s", s.Adults, s.Children, s.Infants, s.Cabin)
	if s.MaxStops != nil {
		fmt.Fprintf(&b, ":s%d", *s.MaxStops)
	}
	if s.MaxPrice != nil {
		fmt.Fprintf(&b, ":p%g", *s.MaxPrice)
	}
	return b.String()
}

// Validate checks that the spec describes a well-formed upstream query.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchSpec) Validate() error {
	if s.Kind == "" {
		return fmt.Errorf("%w: kind is required", ErrInvalidRequest)
	}

	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if err := validateDate("date", s.Date); err != nil {
		return err
	}
	if s.ReturnDate != "" {
		if err := validateDate("returnDate", s.ReturnDate); err != nil {
			return err
		}
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if s.Adults+s.Children+s.Infants > 9 {
		return fmt.Errorf("%w: total passengers cannot exceed 9", ErrInvalidRequest)
	}
	if s.Children < 0 || s.Infants < 0 {
		return fmt.Errorf("%w: passenger counts must be non-negative", ErrInvalidRequest)
	}

	if s.Cabin != "" && !validCabins[s.Cabin] {
		return fmt.Errorf("%w: cabin must be one of: economy, premium_economy, business, first; got %q", ErrInvalidRequest, s.Cabin)
	}

	if s.MaxStops != nil && *s.MaxStops < 0 {
		return fmt.Errorf("%w: maxStops must be non-negative", ErrInvalidRequest)
	}
	if s.MaxPrice != nil && *s.MaxPrice <= 0 {
		return fmt.Errorf("%w: maxPrice must be positive", ErrInvalidRequest)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchSpec) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = DefaultAdults
	}
	if s.Cabin == "" {
		s.Cabin = DefaultCabin
	}
	if s.Limit == 0 {
		s.Limit = DefaultLimit
	}
}

// validateDate checks a YYYY-MM-DD date string.
func validateDate(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}

// DateLayout is the date format used throughout the service.
const DateLayout = "2006-01-02"
