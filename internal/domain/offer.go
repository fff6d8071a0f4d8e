// Package domain contains the core business entities and rules for the fare
// search orchestration service. These entities are upstream-agnostic and form
// the foundation upon which all other components are built.
package domain

import "time"

// Offer represents a single flight offer returned by the upstream search API.
type Offer struct {
	// ID is the upstream itinerary identifier
	ID string `json:"id"`

	// Price contains pricing information
	Price PriceInfo `json:"price"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartureTime is the scheduled departure time
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the scheduled arrival time
	ArrivalTime time.Time `json:"arrivalTime"`

	// DurationMinutes is the total journey duration in minutes
	DurationMinutes int `json:"durationMinutes"`

	// Stops is the number of stops (0 = direct flight)
	Stops int `json:"stops"`

	// BookingURL is an optional deep link for booking this offer
	BookingURL string `json:"bookingUrl,omitempty"`
}

// PriceInfo contains pricing information for an offer.
type PriceInfo struct {
	// Amount is the numeric price value
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// CheapestOf returns the offer with the lowest price, or nil when the slice
// is empty. Ties keep the earliest offer in the slice.
func CheapestOf(offers []Offer) *Offer {
	if len(offers) == 0 {
		return nil
	}

	cheapest := &offers[0]
	for i := 1; i < len(offers); i++ {
		if offers[i].Price.Amount < cheapest.Price.Amount {
			cheapest = &offers[i]
		}
	}
	return cheapest
}
