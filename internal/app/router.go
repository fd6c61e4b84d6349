package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/modamall/backoffice/internal/auth"
	"github.com/modamall/backoffice/internal/catalog/products"
	"github.com/modamall/backoffice/internal/catalog/reference"
	"github.com/modamall/backoffice/internal/enquiries"
	"github.com/modamall/backoffice/internal/events"
	"github.com/modamall/backoffice/internal/observability"
	"github.com/modamall/backoffice/internal/shared"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	SessionManager   *shared.SessionManager
	AuthHandler      *auth.Handler
	ProductHandler   *products.Handler
	ReferenceHandler *reference.Handler
	EventHandler     *events.Handler
	EnquiryHandler   *enquiries.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with back-office defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/auth", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSignIn(params.Logger, params.SessionManager))

		// The static registration-form path must be mounted alongside the
		// product code wildcard; chi gives it priority.
		params.ReferenceHandler.MountRoutes(r)
		params.ProductHandler.MountRoutes(r)
		params.EventHandler.MountRoutes(r)
		params.EnquiryHandler.MountRoutes(r)
	})

	return r
}
