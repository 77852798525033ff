// Package http hosts the GraphQL endpoint behind a chi router.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"cityguide/internal/service"
	gqltransport "cityguide/internal/transport/graphql"
)

// Server is the HTTP server carrying the GraphQL endpoint.
type Server struct {
	httpServer  *http.Server
	router      *chi.Mux
	authService *service.AuthService
	logger      *slog.Logger
}

// NewServer builds the router, parses the schema and mounts it at
// /graphql. Schema errors are programming errors, so parsing panics.
func NewServer(
	resolver *gqltransport.Resolver,
	authService *service.AuthService,
	logger *slog.Logger,
) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		authService: authService,
		logger:      logger,
	}

	schema := graphql.MustParseSchema(gqltransport.Schema, resolver)

	s.setupMiddleware()
	s.setupRoutes(schema)

	return s
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
}

func (s *Server) setupRoutes(schema *graphql.Schema) {
	s.router.Get("/health", s.handleHealth)

	// Token parsing never rejects: login and register must stay
	// reachable without a token, so resolvers enforce auth themselves.
	s.router.With(s.authMiddleware).Handle("/graphql", &relay.Handler{Schema: schema})
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		s.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.status),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
