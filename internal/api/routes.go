package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zapponejosh/ethiocal/internal/config"
	"github.com/zapponejosh/ethiocal/internal/metrics"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /metrics                                      (METRICS_ENABLED)
//	GET /api/v1/convert/to-gregorian?year&month&day
//	GET /api/v1/convert/to-ethiopian?year&month&day
//	GET /api/v1/convert/hijri?date=YYYY-MM-DD
//	GET /api/v1/convert/hijri-to-gregorian?year&month&day&target
//	GET /api/v1/today
//	GET /api/v1/bahire-hasab/{year}
//	GET /api/v1/movable/{key}/{year}
//	GET /api/v1/holidays/{year}
//	GET /api/v1/holidays/{year}/{month}
//	GET /api/v1/holidays/{year}/export.ics
//	GET /api/v1/holidays/{year}/export.csv
//	GET /api/v1/holiday/{key}/{year}
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		middleware.RealIP,
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		MetricsMiddleware(m),
		CORSMiddleware(cfg.CORSOrigin),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	r.Get("/health", handlers.HealthCheck)
	if cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/convert", func(r chi.Router) {
			r.Get("/to-gregorian", handlers.ToGregorian)
			r.Get("/to-ethiopian", handlers.ToEthiopian)
			r.Get("/hijri", handlers.ToHijri)
			r.Get("/hijri-to-gregorian", handlers.FromHijri)
		})

		r.Get("/today", handlers.Today)
		r.Get("/bahire-hasab/{year}", handlers.GetBahireHasab)
		r.Get("/movable/{key}/{year}", handlers.GetMovable)

		r.Route("/holidays/{year}", func(r chi.Router) {
			r.Get("/", handlers.GetHolidaysForYear)
			r.Get("/export.ics", handlers.ExportICS)
			r.Get("/export.csv", handlers.ExportCSV)
			r.Get("/{month}", handlers.GetHolidaysInMonth)
		})
		r.Get("/holiday/{key}/{year}", handlers.GetHoliday)
	})

	return r
}
