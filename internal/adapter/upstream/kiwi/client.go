// Package kiwi implements the upstream search port against the
// Kiwi/Skypicker GraphQL API. The wire protocol stays inside this package;
// the orchestration core only ever sees SearchSpec in and Offer out.
package kiwi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
	"github.com/fare-search/fare-search-orchestration-service/internal/infrastructure/retry"
)

// DefaultBaseURL is the production GraphQL endpoint.
const DefaultBaseURL = "https://api.skypicker.com/umbrella/v2/graphql"

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "fare-search/1.0"
	featureName    = "SearchOneWayItinerariesQuery"
)

// Options configures the client.
type Options struct {
	// BaseURL is the GraphQL endpoint (DefaultBaseURL when empty)
	BaseURL string

	// Timeout is the per-request HTTP timeout (30s when zero)
	Timeout time.Duration

	// Retry controls backoff for transient failures
	Retry retry.Config
}

// Client is a SearchPort implementation over the Kiwi GraphQL API. It is
// safe for concurrent use; the embedded http.Client owns connection
// pooling.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retryCfg   retry.Config
	log        zerolog.Logger
}

// NewClient creates a client with the given options.
func NewClient(opts Options, log zerolog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = retry.UpstreamConfig
	}
	opts.Retry.RetryIf = retry.SkipPermanent

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		retryCfg:   opts.Retry,
		log:        log,
	}
}

// Search implements domain.SearchPort. Transient failures (network errors,
// 5xx) are retried with backoff; client errors are permanent and fail
// immediately.
func (c *Client) Search(ctx context.Context, spec domain.SearchSpec) ([]domain.Offer, error) {
	body, err := json.Marshal(map[string]any{
		"query":     onewaySearchQuery,
		"variables": buildVariables(spec),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	return retry.DoWithResult(ctx, func() ([]domain.Offer, error) {
		return c.doSearch(ctx, body)
	}, c.retryCfg)
}

// Ping checks upstream reachability with a minimal search. Used by the
// health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	spec := domain.SearchSpec{
		Kind:        domain.KindPriceCheck,
		Origin:      "SFO",
		Destination: "JFK",
		Date:        time.Now().AddDate(0, 1, 0).Format(domain.DateLayout),
		Adults:      1,
	}
	spec.SetDefaults()
	spec.Limit = 1

	_, err := c.Search(ctx, spec)
	return err
}

// doSearch performs one HTTP round trip and normalizes the response.
func (c *Client) doSearch(ctx context.Context, body []byte) ([]domain.Offer, error) {
	url := c.baseURL + "?featureName=" + featureName

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("search request failed: %s", resp.Status)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, retry.NewPermanent(err)
		}
		return nil, err
	}

	var envelope searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	offers, err := normalizeOffers(envelope)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}

	c.log.Debug().Int("offers", len(offers)).Msg("Upstream search completed")
	return offers, nil
}

// buildVariables translates a SearchSpec into GraphQL query variables.
func buildVariables(spec domain.SearchSpec) map[string]any {
	filter := map[string]any{
		"transportTypes":   []string{"FLIGHT"},
		"contentProviders": []string{"KIWI", "FRESH", "KAYAK"},
		"flightsApiLimit":  spec.Limit,
		"limit":            spec.Limit,
	}
	if spec.MaxStops != nil {
		filter["maxStopsCount"] = *spec.MaxStops
	}
	if spec.MaxPrice != nil {
		filter["price"] = map[string]any{"end": *spec.MaxPrice}
	}

	return map[string]any{
		"search": map[string]any{
			"itinerary": map[string]any{
				"source":      map[string]any{"ids": []string{spec.Origin}},
				"destination": map[string]any{"ids": []string{spec.Destination}},
				"outboundDepartureDate": map[string]any{
					"start": spec.Date + "T00:00:00",
					"end":   spec.Date + "T23:59:59",
				},
			},
			"passengers": map[string]any{
				"adults":   spec.Adults,
				"children": spec.Children,
				"infants":  spec.Infants,
			},
			"cabinClass": map[string]any{
				"cabinClass":        cabinClassValue(spec.Cabin),
				"applyMixedClasses": false,
			},
		},
		"filter": filter,
		"options": map[string]any{
			"sortBy":   "PRICE",
			"currency": "USD",
			"locale":   "en",
			"partner":  "skypicker",
		},
	}
}

// cabinClassValue maps the service cabin names to the upstream enum.
func cabinClassValue(cabin string) string {
	switch cabin {
	case "premium_economy":
		return "PREMIUM_ECONOMY"
	case "business":
		return "BUSINESS"
	case "first":
		return "FIRST"
	default:
		return "ECONOMY"
	}
}

// onewaySearchQuery requests one-way itineraries with price, duration,
// segment stations, and booking links.
const onewaySearchQuery = `
query SearchOneWayItinerariesQuery($search: SearchOnewayInput, $filter: ItinerariesFilterInput, $options: ItinerariesOptionsInput) {
  onewayItineraries(search: $search, filter: $filter, options: $options) {
    __typename
    ... on AppError { error }
    ... on Itineraries {
      itineraries {
        id
        price { amount }
        sector {
          duration
          sectorSegments {
            segment {
              source { localTime station { code } }
              destination { localTime station { code } }
            }
          }
        }
        bookingOptions { edges { node { bookingUrl } } }
      }
    }
  }
}`
