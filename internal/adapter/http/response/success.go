// Package response provides standardized HTTP response builders for the fare search API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream,omitempty"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// HealthWithUpstream writes a health check response that includes upstream
// reachability. An unreachable upstream degrades the status without failing
// the check; the service can still answer from cache.
func HealthWithUpstream(c echo.Context, upstreamOK bool) error {
	resp := &HealthResponse{Status: "ok", Upstream: "ok"}
	if !upstreamOK {
		resp.Status = "degraded"
		resp.Upstream = "unreachable"
	}
	return c.JSON(http.StatusOK, resp)
}

// SearchResults writes a 200 OK response with search results.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}
