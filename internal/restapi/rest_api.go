package restapi

import (
	"net/http"
	"time"

	"gdpdash.opengdp.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// ApplyMiddleware wraps the given handler with the standard middleware chain:
// request logging, security headers, response compression, and per-key rate
// limiting.
func (api *RestAPI) ApplyMiddleware(next http.Handler) http.Handler {
	handler := api.rateLimiter(next)
	handler = CompressionMiddleware(handler)
	handler = securityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}
