package router

import (
	"net/http"
	"resto/config"
	"resto/internal/handlers/health"
	"resto/internal/handlers/reservation"
	"resto/internal/handlers/table"
	"resto/shared/failure"
	"resto/transport/http/middleware"
	"resto/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Health      health.Handler
	Table       table.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	middleware     middleware.AppMiddleware
	cfg            *config.Config
}

// SetupRoutes registers every route on router. The fallback handlers come
// first so mounted subrouters inherit them.
func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.WithError(w, failure.NotFound("Path not found: "+req.URL.Path))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.WithError(w, failure.MethodNotAllowed(req.Method, req.URL.Path))
	})

	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		r.middleware.RequestLogger,
		chiMiddleware.Recoverer,
		r.middleware.Tracing,
		r.middleware.RateLimit(),
	)

	if r.cfg.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.cfg.App.CORS.AllowedOrigins,
			AllowedMethods:   r.cfg.App.CORS.AllowedMethods,
			AllowedHeaders:   r.cfg.App.CORS.AllowedHeaders,
			AllowCredentials: r.cfg.App.CORS.AllowCredentials,
			MaxAge:           r.cfg.App.CORS.MaxAgeSeconds,
		}))
	}

	r.DomainHandlers.Health.Router(router)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.middleware.APIKey)

		r.DomainHandlers.Table.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		middleware:     appMiddleware,
		cfg:            cfg,
	}
}
