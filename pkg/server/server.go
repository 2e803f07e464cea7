package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vnode/internal/config"
	"github.com/vango-dev/vnode/internal/tracing"
	"github.com/vango-dev/vnode/pkg/markup"
	"github.com/vango-dev/vnode/pkg/middleware"
)

// Server is the normalization HTTP service.
type Server struct {
	config   *config.Config
	registry *markup.Registry
	decoder  *markup.Decoder
	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer
	tracer   trace.TracerProvider
	logger   *slog.Logger
	version  string
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the component registry used by the decoder.
func WithRegistry(registry *markup.Registry) Option {
	return func(s *Server) {
		s.registry = registry
	}
}

// WithMetricsRegistry sets the Prometheus registry the server registers
// its collectors with and serves from. Default: a fresh registry with
// the Go and process collectors.
func WithMetricsRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		s.gatherer = registry
		s.metrics = middleware.NewMetrics(middleware.WithRegistry(registry))
	}
}

// WithTracerProvider sets the tracer provider. Default: the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		s.tracer = tp
	}
}

// WithVersion sets the version reported by /healthz.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// New creates a Server. A nil cfg uses config.New().
func New(cfg *config.Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.New()
	}
	s := &Server{
		config:  cfg,
		logger:  slog.Default(),
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.registry == nil {
		s.registry = markup.NewRegistry()
	}
	if s.metrics == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.gatherer = reg
		s.metrics = middleware.NewMetrics(middleware.WithRegistry(reg))
	}
	s.decoder = markup.NewDecoder(s.registry)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	otelOpts := []middleware.OTelOption{
		middleware.WithTracerName(s.config.Tracing.TracerName),
		middleware.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz" && r.URL.Path != s.config.Server.MetricsPath
		}),
	}
	if s.tracer != nil {
		otelOpts = append(otelOpts, middleware.WithTracerProvider(s.tracer))
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(s.metrics.Handler)
	r.Use(middleware.OpenTelemetry(otelOpts...))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/normalize", s.handleNormalize)
		r.Post("/coerce", s.handleCoerce)
		r.Get("/components", s.handleComponents)
	})
	if path := s.config.Server.MetricsPath; path != "" {
		r.Method(http.MethodGet, path, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = writeJSON(w, http.StatusNotFound, errorBody{Error: notFound(r)})
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Registry returns the component registry.
func (s *Server) Registry() *markup.Registry {
	return s.registry
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
		s.logger.Info("server shutdown complete")
		return nil
	}
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Run builds a Server from cfg and serves until ctx is canceled.
// It loads cfg's component file and installs tracing when an OTLP
// endpoint is configured.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) error {
	if cfg == nil {
		cfg = config.New()
	}
	s := New(cfg, opts...)

	if path := cfg.ComponentsPath(); path != "" {
		if err := s.registry.LoadFile(path); err != nil {
			return err
		}
		s.logger.Info("components loaded", "path", path, "count", s.registry.Len())
	}

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		ServiceName:    cfg.Tracing.TracerName,
		ServiceVersion: s.version,
		Environment:    cfg.Tracing.Environment,
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		SampleRatio:    cfg.Tracing.SampleRatio,
	}, s.logger)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	return s.ListenAndServe(ctx)
}
