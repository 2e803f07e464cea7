// Package middleware provides HTTP middleware for the vnode service.
//
// This package includes:
//   - OpenTelemetry distributed tracing middleware
//   - Prometheus metrics middleware
//   - Structured request logging
//   - Request IDs (UUIDs unless the client sends X-Request-Id)
//
// All middleware has the func(http.Handler) http.Handler shape used by chi.
//
// # OpenTelemetry Middleware
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("vnode"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The tracer comes from the global provider. Configure it with
// otel.SetTracerProvider before serving.
//
// # Prometheus Metrics
//
//	m := middleware.NewMetrics(middleware.WithNamespace("vnode"))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// Metrics collected:
//   - vnode_requests_total: Counter of requests by route and status class
//   - vnode_request_duration_seconds: Histogram of request duration by route
//   - vnode_nodes_built_total: Counter of nodes built, by kind
//   - vnode_decode_errors_total: Counter of rejected documents, by code
package middleware
