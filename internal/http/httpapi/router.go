package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"fundledger/internal/http/handlers"
	"fundledger/internal/infra"
	"fundledger/internal/middleware"
)

// NewRouter assembles the API surface with the shared middleware chain.
func NewRouter(app *handlers.App, cfg *infra.Config, log zerolog.Logger, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(log),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.Caller,
		middleware.Country(lookup),
	)

	r.Get("/v1/healthz", app.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1/funds", func(r chi.Router) {
		r.Post("/", app.FundsCreate)
		r.Get("/", app.FundsList)
		r.Get("/{id}", app.FundsGet)
		r.Get("/{id}/funding", app.FundsFunding)
		r.Post("/{id}/contributions", app.FundsContribute)
		r.Post("/{id}/refund", app.FundsRefund)
	})

	r.Get("/v1/events", app.EventsRecent)
	r.Post("/v1/admin/switch", app.AdminSwitch)

	return r
}
