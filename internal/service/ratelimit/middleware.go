package ratelimit

import (
	xhttp "HousePrice/pkg/http"
	applogger "HousePrice/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MsgTooManyRequests is the error body for a rejected request.
const MsgTooManyRequests = "Too many requests"

// Middleware rejects requests over the limit with 429, keyed by client IP.
// Limiter errors let the request through.
func Middleware(l Limiter, log *applogger.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = applogger.Nop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := l.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn("rate limiter unavailable", applogger.Error(err))
				return next(c)
			}
			if !ok {
				return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError(MsgTooManyRequests))
			}
			return next(c)
		}
	}
}
