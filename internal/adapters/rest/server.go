package rest

import (
	"context"
	"errors"
	"fmt"
	core_port "listing-service/internal/core/port"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers - все обработчики, которые монтирует сервер
type Handlers struct {
	Properties *PropertyHandler
	Filters    *FilterHandler
	Tools      *ToolsHandler
	Showcase   *ShowcaseHandler
	Favorites  *FavoritesHandler
}

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewRouter собирает chi-роутер со всеми middleware
func NewRouter(handlers Handlers, allowedOrigins []string, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID", "X-Visitor-ID"},
		ExposedHeaders:   []string{"X-Trace-ID", "X-Visitor-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/properties", func(r chi.Router) {
		r.Get("/", handlers.Properties.FindProperties)
		r.Get("/{propertyID}", handlers.Properties.GetPropertyDetails)
	})

	r.Get("/filters/options", handlers.Filters.GetFilterOptions)
	r.Get("/dictionaries", handlers.Filters.GetDictionaries)

	r.Get("/floors/parse", handlers.Tools.ParseFloor)
	r.Get("/units/area", handlers.Tools.ConvertArea)

	r.Get("/components", handlers.Showcase.GetComponents)

	r.Route("/favorites", func(r chi.Router) {
		r.Use(VisitorMiddleware)

		r.Get("/", handlers.Favorites.GetFavorites)
		r.Post("/", handlers.Favorites.AddToFavorites)
		r.Delete("/{propertyID}", handlers.Favorites.RemoveFromFavorites)
	})

	return r
}

func NewServer(port string, handlers Handlers, allowedOrigins []string, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           NewRouter(handlers, allowedOrigins, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// Start блокируется до остановки сервера
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
