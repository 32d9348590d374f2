package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	commandhandlers "libreria-backend/application/commands/handlers"
	queryhandlers "libreria-backend/application/queries/handlers"
	"libreria-backend/infrastructure/config"
	"libreria-backend/interfaces/http/rest/handlers"
	"libreria-backend/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg      *config.Config
	deleter  *commandhandlers.DeleteProductHandler
	searcher *queryhandlers.SearchProductsHandler
	logger   *zap.Logger
}

// NewRouter creates a new router instance. The searcher may be nil when
// the full-text engine mode is not configured.
func NewRouter(
	cfg *config.Config,
	deleter *commandhandlers.DeleteProductHandler,
	searcher *queryhandlers.SearchProductsHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:      cfg,
		deleter:  deleter,
		searcher: searcher,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.libreria.app"},
			AllowedMethods:   []string{"GET", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		if rt.searcher != nil {
			searchHandler := handlers.NewSearchHandler(rt.searcher, rt.logger)
			r.Get("/search", searchHandler.Search)
		}

		// Mutations sit behind the identity boundary.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.cfg.JWTSecret, rt.cfg.JWTIssuer))

			productHandler := handlers.NewProductHandler(rt.deleter, rt.logger)
			r.Delete("/products/{productID}", productHandler.DeleteProduct)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
