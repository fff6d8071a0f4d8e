// Package http provides the HTTP handler layer for the fare search API.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fare-search/fare-search-orchestration-service/internal/adapter/http/response"
	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
	"github.com/fare-search/fare-search-orchestration-service/internal/usecase"
)

// pingTimeout bounds the upstream reachability probe in the health check.
const pingTimeout = 5 * time.Second

// Pinger checks upstream reachability. Implemented by the upstream client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// FareHandler handles HTTP requests for fare search endpoints.
type FareHandler struct {
	useCase usecase.FareSearchUseCase
	pinger  Pinger
}

// NewFareHandler creates a new FareHandler with the given use case. The
// pinger may be nil, in which case the health check skips the upstream
// probe.
func NewFareHandler(uc usecase.FareSearchUseCase, pinger Pinger) *FareHandler {
	return &FareHandler{
		useCase: uc,
		pinger:  pinger,
	}
}

// CheapestDay handles POST /api/v1/fares/cheapest-day
//
// @Summary Find the cheapest day to fly
// @Description Searches every date in an inclusive window (up to 62 days) and returns the cheapest day plus a per-day price calendar
// @Tags fares
// @Accept json
// @Produce json
// @Param request body CheapestDayRequest true "Search window"
// @Success 200 {object} domain.CheapestDayResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/fares/cheapest-day [post]
func (h *FareHandler) CheapestDay(c echo.Context) error {
	var req CheapestDayRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.CheapestDay(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// CheapestRoute handles POST /api/v1/fares/cheapest-route
//
// @Summary Find the cheapest destination
// @Description Compares up to 20 candidate destinations on one date and returns them ranked by price
// @Tags fares
// @Accept json
// @Produce json
// @Param request body CheapestRouteRequest true "Candidate destinations"
// @Success 200 {object} domain.CheapestRouteResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/fares/cheapest-route [post]
func (h *FareHandler) CheapestRoute(c echo.Context) error {
	var req CheapestRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.CheapestRoute(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// FlexibleDates handles POST /api/v1/fares/flexible-dates
//
// @Summary Find the cheapest day around a target date
// @Description Searches a symmetric window of up to 14 days on each side of a target date
// @Tags fares
// @Accept json
// @Produce json
// @Param request body FlexibleDatesRequest true "Target date and flexibility"
// @Success 200 {object} domain.FlexibleDatesResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/fares/flexible-dates [post]
func (h *FareHandler) FlexibleDates(c echo.Context) error {
	var req FlexibleDatesRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.FlexibleDates(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// BatchSearch handles POST /api/v1/fares/batch
//
// @Summary Resolve several searches in one request
// @Description Resolves up to 10 independent single-day searches; malformed items fail at their index without rejecting the batch
// @Tags fares
// @Accept json
// @Produce json
// @Param request body BatchSearchRequest true "Batch items"
// @Success 200 {object} domain.BatchSearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/fares/batch [post]
func (h *FareHandler) BatchSearch(c echo.Context) error {
	var req BatchSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	req.Normalize()

	result, err := h.useCase.BatchSearch(c.Request().Context(), req.ToItems())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// PriceCheck handles POST /api/v1/fares/price-check
//
// @Summary Check the cheapest fare for one route and date
// @Tags fares
// @Accept json
// @Produce json
// @Param request body PriceCheckRequest true "Route and date"
// @Success 200 {object} domain.PriceCheckResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream failure"
// @Router /api/v1/fares/price-check [post]
func (h *FareHandler) PriceCheck(c echo.Context) error {
	var req PriceCheckRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.PriceCheck(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// CacheStats handles GET /api/v1/cache/stats
//
// @Summary Response cache statistics
// @Tags cache
// @Produce json
// @Success 200 {object} cache.Stats
// @Router /api/v1/cache/stats [get]
func (h *FareHandler) CacheStats(c echo.Context) error {
	return response.OK(c, h.useCase.CacheStats())
}

// CacheClear handles DELETE /api/v1/cache
//
// @Summary Clear the response cache
// @Tags cache
// @Produce json
// @Success 200 {object} map[string]int
// @Router /api/v1/cache [delete]
func (h *FareHandler) CacheClear(c echo.Context) error {
	cleared := h.useCase.CacheClear()
	return response.OK(c, map[string]int{"cleared": cleared})
}

// Health handles GET /health. When a pinger is configured the response
// includes upstream reachability; an unreachable upstream reports the
// service as degraded, not down.
func (h *FareHandler) Health(c echo.Context) error {
	if h.pinger == nil {
		return response.Health(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	return response.HealthWithUpstream(c, h.pinger.Ping(ctx) == nil)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FareHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FareHandler) handleError(c echo.Context, err error) error {
	// Bound and shape violations from the domain layer
	for _, sentinel := range []error{
		domain.ErrInvalidRequest,
		domain.ErrInvalidRange,
		domain.ErrEmptyDestinations,
		domain.ErrTooManyDestinations,
		domain.ErrFlexibilityTooLarge,
		domain.ErrEmptyBatch,
		domain.ErrTooManyBatchItems,
		domain.ErrEmptySpecs,
		domain.ErrFanOutExceeded,
	} {
		if errors.Is(err, sentinel) {
			return response.ValidationErrorWithMessage(c, err.Error())
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// A price check surfaces its single sub-query failure directly
	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return response.UpstreamFailure(c, response.MsgUpstreamFailure)
	}

	return response.InternalServerError(c)
}
