// Package app contains the HTTP API surface.
package app

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/HenningWaack/ccAcmePairing/internal/catalog"
	"github.com/HenningWaack/ccAcmePairing/internal/sec"
)

// New creates the API server. The auth gate runs after logging and metrics so
// rejected requests are still observable, and before every business handler.
// No CSRF middleware is installed: the API issues no cookies and has no
// browser form surface, so there is nothing for a cross-site request to ride
// on.
func New(logger *slog.Logger, products *catalog.Service, creds *sec.CredentialStore) *echo.Echo {
	srv := echo.New()

	srv.HideBanner = true
	srv.HidePort = true
	srv.Logger.SetLevel(log.OFF)

	srv.Use(
		middleware.Recover(),
		middleware.RequestID(),
		logRequests(logger),
		collectMetrics(),
		middleware.Decompress(),
		middleware.Gzip(),
		middleware.Secure(),
		sec.Gate(sec.DefaultRules(), creds),
	)

	handler{products: products}.register(srv)
	registerSystem(srv)
	return srv
}

func logRequests(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("uri", req.RequestURI),
				slog.String("route", c.Path()),
				slog.Duration("latency", latency),
				slog.Int("status", res.Status),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.LogAttrs(
				req.Context(),
				slog.LevelDebug,
				"request handled",
				attrs...,
			)
			return err
		}
	}
}
