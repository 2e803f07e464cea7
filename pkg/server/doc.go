// Package server exposes node normalization over HTTP.
//
// Routes:
//
//	POST /v1/normalize    element description (YAML or JSON) -> snapshot
//	POST /v1/coerce       JSON value -> coerced snapshot, or null
//	GET  /v1/components   registered component names
//	GET  /healthz         liveness
//	GET  /metrics         Prometheus exposition (path configurable)
//
// Every request runs through chi's Recoverer and the request ID, logging,
// metrics and tracing middleware from pkg/middleware.
// Failures are answered with a JSON body {"error": {...}} built from
// internal/errors.
//
// Each request decodes its own tree. Trees are never shared between
// requests, so handlers need no locking beyond the component registry.
package server
