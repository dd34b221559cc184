package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/etfgrowth/analyzer/internal/api/handlers"
	custommiddleware "github.com/etfgrowth/analyzer/internal/api/middleware"
	"github.com/etfgrowth/analyzer/internal/config"
	"github.com/etfgrowth/analyzer/internal/service"
	"github.com/etfgrowth/analyzer/web"
)

// NewRouter creates and configures the HTTP router
func NewRouter(analysisService *service.AnalysisService, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler()
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		symbolsHandler := handlers.NewSymbolsHandler()
		r.Get("/symbols", symbolsHandler.Symbols)

		analysisHandler := handlers.NewAnalysisHandler(analysisService, cfg.Market.Timezone)
		r.Post("/analysis", analysisHandler.Analyze)
	})

	// Embedded single-page UI
	fileServer := http.FileServer(http.FS(web.Static))
	r.Handle("/*", cacheStatic(fileServer))

	return r
}

// cacheStatic lets browsers cache the embedded UI assets briefly.
func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=300")
		next.ServeHTTP(w, r)
	})
}
