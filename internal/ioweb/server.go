// Package ioweb provides the JSON HTTP API of NameNest.
package ioweb

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/namenest/namenest/pkg/catalog"
	"github.com/namenest/namenest/pkg/config"
	"github.com/namenest/namenest/pkg/content"
	"github.com/namenest/namenest/pkg/favorites"
)

// Loader produces a fresh catalog.
type Loader interface {
	Load(ctx context.Context) *catalog.Catalog
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog  atomic.Pointer[catalog.Catalog]
	reloadMu sync.Mutex

	loader    Loader
	library   *content.Library
	favorites favorites.Store

	port           int
	allowedOrigins []string
	pageSize       int

	router *chi.Mux
	logger *slog.Logger
}

// NewServer creates a server with all routes configured. The catalog
// is replaced wholesale by Reload.
func NewServer(
	cfg *config.Config,
	cat *catalog.Catalog,
	loader Loader,
	lib *content.Library,
	favs favorites.Store,
) *Server {
	s := &Server{
		loader:         loader,
		library:        lib,
		favorites:      favs,
		port:           cfg.Server.Port,
		allowedOrigins: cfg.Server.AllowedOrigins,
		pageSize:       cfg.Names.PageSize,
		router:         chi.NewRouter(),
		logger:         slog.Default().With("component", "web"),
	}
	s.catalog.Store(cat)

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Catalog returns the current catalog.
func (s *Server) Catalog() *catalog.Catalog {
	return s.catalog.Load()
}

// Reload loads a new catalog and makes it current. Requests that
// started before the swap keep using the previous catalog. If ctx is
// done before the load finishes, the current catalog is kept and
// returned.
func (s *Server) Reload(ctx context.Context) *catalog.Catalog {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	c := s.loader.Load(ctx)
	if err := ctx.Err(); err != nil {
		cur := s.Catalog()
		s.logger.Warn("Catalog reload canceled",
			"error", err, "source", cur.Source, "records", cur.Len())
		return cur
	}
	s.catalog.Store(c)
	s.logger.Info("Catalog reloaded", "source", c.Source, "records", c.Len())
	return c
}

// Run serves the API until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(s.port),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP API started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- ServerError(srv.Addr, err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("HTTP API stopping")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return ServerError(srv.Addr, err)
	}
	return nil
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/names", func(r chi.Router) {
			r.Get("/", s.handleListNames)
			r.Get("/random", s.handleRandomName)
			r.Get("/{key}", s.handleGetName)
		})
		r.Get("/facets", s.handleFacets)

		r.Get("/catalog", s.handleCatalog)
		r.Post("/catalog/reload", s.handleReload)

		r.Get("/favorites", s.handleListFavorites)
		r.Post("/favorites/{id}", s.handleToggleFavorite)

		r.Get("/blog", s.handleListPosts)
		r.Get("/blog/{slug}", s.handleGetPost)
		r.Get("/testimonials", s.handleTestimonials)
	})
}

// requestLogger writes one structured log line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
