package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/apickard/discbin/internal/logger"
	"github.com/apickard/discbin/internal/telemetry"
	"github.com/apickard/discbin/pkg/lostfound/api/handlers"
	"github.com/apickard/discbin/pkg/lostfound/store"
	"github.com/apickard/discbin/pkg/metrics"
	"github.com/apickard/discbin/web"
)

// NewRouter creates and configures the chi router with all middleware and routes.
//
// The router is configured with:
//   - Request ID middleware for request tracking
//   - Real IP extraction for proper client identification
//   - Custom request logging using the internal logger
//   - Prometheus request metrics (when metrics are enabled)
//   - Panic recovery to prevent server crashes
//   - Request timeout to prevent hung requests
//
// Routes:
//   - GET  /health - Liveness probe
//   - GET  /health/ready - Readiness probe
//   - POST /api/found-discs - Report a found disc
//   - GET  /api/found-discs/{id} - Get a single record
//   - GET  /api/inventory - List unclaimed discs
//   - PUT  /api/mark-claimed/{id} - Mark a disc claimed
//   - PUT  /api/mark-texted/{id} - Record that the owner was texted
//   - GET  /inventory, /enter-lost-disc, /static/* - Embedded staff UI
func NewRouter(discStore store.DiscStore, m *metrics.Metrics, instanceID string, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Middleware stack - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestTracing)
	r.Use(requestLogger)
	if m != nil {
		r.Use(requestMetrics(m))
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	healthHandler := handlers.NewHealthHandler(discStore, instanceID)
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Liveness)
		r.Get("/ready", healthHandler.Readiness)
	})

	discHandler := handlers.NewDiscHandler(discStore, m)
	r.Route("/api", func(r chi.Router) {
		r.Post("/found-discs", discHandler.Create)
		r.Get("/found-discs/{id}", discHandler.Get)
		r.Get("/inventory", discHandler.Inventory)
		r.Put("/mark-claimed/{id}", discHandler.MarkClaimed)
		r.Put("/mark-texted/{id}", discHandler.MarkTexted)
	})

	// Embedded staff UI
	r.Get("/inventory", web.ServePage("inventory.html"))
	r.Get("/enter-lost-disc", web.ServePage("enter-lost-disc.html"))
	r.Handle("/static/*", web.StaticHandler("/static/"))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/inventory", http.StatusTemporaryRedirect)
	})

	return r
}

// isHealthPath returns true if the request path is a healthcheck endpoint.
func isHealthPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/")
}

// requestLogger logs requests using the internal logger.
//
// Request starts are logged at DEBUG, completions at INFO.
// Healthcheck requests are logged at DEBUG to reduce noise.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())

		logger.Debug("API request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		logArgs := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration.String(),
		}

		if isHealthPath(r.URL.Path) {
			logger.Debug("API request completed", logArgs...)
		} else {
			logger.Info("API request completed", logArgs...)
		}
	})
}

// spanName builds the span name for a request from its method and
// resolved chi route pattern.
func spanName(method, route string) string {
	return method + " " + route
}

// requestTracing opens a span per request. The span starts out named by
// the raw path and is renamed to the chi route pattern once routing has
// resolved it, keeping span names bounded the same way metrics labels are.
// A no-op tracer is used when telemetry is disabled.
func requestTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := telemetry.StartSpan(r.Context(), spanName(r.Method, r.URL.Path))
		defer span.End()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		if rctx := chi.RouteContext(ctx); rctx != nil {
			if route := rctx.RoutePattern(); route != "" {
				span.SetName(spanName(r.Method, route))
			}
		}
		span.SetAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.Int("http.response.status_code", ww.Status()),
		)
		if ww.Status() >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(ww.Status()))
		}
	})
}

// requestMetrics records request counts and latency per route pattern.
// The chi route pattern keeps {id} paths from exploding label cardinality.
func requestMetrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := m.RequestStarted()
			defer done()

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(r.Method, route, ww.Status(), time.Since(start))
		})
	}
}
