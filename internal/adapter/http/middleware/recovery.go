package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Recover returns middleware that recovers from panics in the handler
// chain. It logs the panic with a stack trace and returns a 500 Internal
// Server Error; the server continues to handle subsequent requests.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					log.Error().
						Str("request_id", GetRequestID(c)).
						Str("panic", panicMsg).
						Str("stack", string(debug.Stack())).
						Msg("Panic recovered")

					// Generic response to avoid leaking internal details
					if !c.Response().Committed {
						c.JSON(http.StatusInternalServerError, map[string]string{
							"code":    "internal_error",
							"message": "An unexpected error occurred",
						})
					}
				}
			}()

			return next(c)
		}
	}
}
