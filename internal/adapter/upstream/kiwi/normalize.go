package kiwi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// localTimeLayout is the segment timestamp format used by the upstream API.
const localTimeLayout = "2006-01-02T15:04:05"

// searchResponse mirrors the subset of the GraphQL response the service
// consumes. The API returns price amounts as strings.
type searchResponse struct {
	Data struct {
		OnewayItineraries struct {
			Typename    string      `json:"__typename"`
			Error       string      `json:"error"`
			Itineraries []itinerary `json:"itineraries"`
		} `json:"onewayItineraries"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type itinerary struct {
	ID    string `json:"id"`
	Price struct {
		Amount string `json:"amount"`
	} `json:"price"`
	Sector struct {
		Duration       int `json:"duration"`
		SectorSegments []struct {
			Segment struct {
				Source      segmentEnd `json:"source"`
				Destination segmentEnd `json:"destination"`
			} `json:"segment"`
		} `json:"sectorSegments"`
	} `json:"sector"`
	BookingOptions struct {
		Edges []struct {
			Node struct {
				BookingURL string `json:"bookingUrl"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"bookingOptions"`
}

type segmentEnd struct {
	LocalTime string `json:"localTime"`
	Station   struct {
		Code string `json:"code"`
	} `json:"station"`
}

// normalizeOffers converts the raw GraphQL envelope into domain offers.
// Itineraries with unparseable prices are skipped rather than failing the
// whole response.
func normalizeOffers(envelope searchResponse) ([]domain.Offer, error) {
	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("upstream graphql error: %s", envelope.Errors[0].Message)
	}

	body := envelope.Data.OnewayItineraries
	if body.Typename == "AppError" {
		return nil, fmt.Errorf("upstream application error: %s", body.Error)
	}

	offers := make([]domain.Offer, 0, len(body.Itineraries))
	for _, it := range body.Itineraries {
		amount, err := strconv.ParseFloat(it.Price.Amount, 64)
		if err != nil {
			continue
		}

		offer := domain.Offer{
			ID: it.ID,
			Price: domain.PriceInfo{
				Amount:   amount,
				Currency: "USD",
			},
			DurationMinutes: it.Sector.Duration / 60,
			Stops:           max(len(it.Sector.SectorSegments)-1, 0),
		}

		if segs := it.Sector.SectorSegments; len(segs) > 0 {
			first := segs[0].Segment
			last := segs[len(segs)-1].Segment
			offer.Origin = first.Source.Station.Code
			offer.Destination = last.Destination.Station.Code
			offer.DepartureTime = parseLocalTime(first.Source.LocalTime)
			offer.ArrivalTime = parseLocalTime(last.Destination.LocalTime)
		}

		if edges := it.BookingOptions.Edges; len(edges) > 0 {
			offer.BookingURL = edges[0].Node.BookingURL
		}

		offers = append(offers, offer)
	}

	return offers, nil
}

// parseLocalTime parses an upstream local timestamp, returning the zero
// time when the value is missing or malformed.
func parseLocalTime(s string) time.Time {
	t, err := time.Parse(localTimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
