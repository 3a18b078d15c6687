package app

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HenningWaack/ccAcmePairing/internal/app/openapi"
)

// requestsTotal counts handled requests. Registered once per process; the
// echo server may be constructed several times in tests.
var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "acme",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Requests handled, by method, route, and status.",
}, []string{"method", "route", "status"})

func collectMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			requestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(c.Response().Status),
			).Inc()
			return err
		}
	}
}

// registerSystem wires the unauthenticated operational endpoints: health
// probes, prometheus exposition, and the API document.
func registerSystem(e *echo.Echo) {
	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
	e.GET("/health", ok)
	e.GET("/health/live", ok)
	e.GET("/health/ready", ok)

	metrics := echo.WrapHandler(promhttp.Handler())
	e.GET("/metrics", metrics)
	e.GET("/prometheus", metrics)

	doc := func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", openapi.YAML)
	}
	e.GET("/openapi.yaml", doc)
	e.GET("/v3/api-docs", doc)
}
