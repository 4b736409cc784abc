package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"

	"github.com/osse101/WorldLoot_Go/internal/droplog"
	"github.com/osse101/WorldLoot_Go/internal/handler"
	"github.com/osse101/WorldLoot_Go/internal/itemdrop"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/metrics"
)

// Config holds the HTTP settings of the server
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string
}

// Dependencies are the services the routes are wired to
type Dependencies struct {
	Drops    itemdrop.Service
	Boxes    handler.BoxCatalog
	Recorder droplog.Recorder
	Rates    handler.RateStore
	GameData handler.GameDataReloader
	// DropLog is nil when no database is configured
	DropLog         droplog.Reader
	ReadinessChecks map[string]handler.HealthChecker
}

// Server is the HTTP front of the drop resolver
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the route tree. Exposed for tests.
func NewRouter(cfg Config, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.ReadinessChecks))
	r.Get("/version", handler.HandleVersion(cfg.ServiceName, cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	dropHandler := handler.NewDropHandler(deps.Drops, deps.Boxes, deps.Recorder)
	ratesHandler := handler.NewRatesHandler(deps.Rates)
	detector := NewSuspiciousActivityDetector(AdminRequestLimit, DetectorWindow)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/drops", func(r chi.Router) {
			r.Post("/global", dropHandler.HandleResolveGlobal)
			r.Post("/individual", dropHandler.HandleResolveIndividual)
			r.Post("/individual/rarity", dropHandler.HandleResolveByRarity)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
			r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))

			r.Get("/rates", ratesHandler.HandleGetRates)
			r.Post("/rates", ratesHandler.HandleSetRate)
			r.Post("/gamedata/reload", handler.HandleReloadGameData(deps.GameData))
			r.Get("/droplog", handler.HandleListDrops(deps.DropLog))
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware attaches a request id to the context and logs each request.
// A caller-supplied X-Request-ID is reused so ids can be followed across servers.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		if lo.SomeBy(QuietPaths, func(p string) bool { return strings.HasPrefix(r.URL.Path, p) }) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
