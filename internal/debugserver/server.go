// Package debugserver exposes a small HTTP endpoint with Prometheus metrics
// and a health probe while a scan is running. Scans over multi-gigabyte
// inputs can take a while; the endpoint makes their progress observable.
// It is off by default and enabled with --debug-addr.
package debugserver

import (
	"context"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"flapscan/internal/shared/loggers"
	"flapscan/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	httpServer *http.Server
	logger     loggers.Logger
}

func New(listenAddr string, logger loggers.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              listenAddr,
			Handler:           newRouter(logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func newRouter(logger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(mwRecoverer(logger))
	router.Use(mwMetrics)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return router
}

// Start serves in a background goroutine until Shutdown is called.
func (s *Server) Start() {
	go func() {
		s.logger.Info().Msgf("debug server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("debug server failed")
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// mwMetrics records request latency using route patterns instead of raw
// paths to avoid high-cardinality metrics.
func mwMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = r.URL.Path
		}

		metricHTTPRequestDuration.WithLabelValues(
			r.Method,
			routePattern,
			strconv.Itoa(recorder.status),
		).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// mwRecoverer provides panic recovery middleware.
func mwRecoverer(logger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error().
						Bytes(loggers.FieldErrorStack, debug.Stack()).
						Msgf("debug server panic recovered: %v", p)
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
