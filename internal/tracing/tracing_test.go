package tracing

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	tp := otel.GetTracerProvider()
	prop := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(prop)
	})
}

func TestSetupWithoutEndpoint(t *testing.T) {
	restoreGlobals(t)
	before := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), Config{ServiceName: "vnode"}, nil)
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if otel.GetTracerProvider() != before {
		t.Error("provider should be left untouched without an endpoint")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error: %v", err)
	}

	fields := otel.GetTextMapPropagator().Fields()
	found := false
	for _, f := range fields {
		if f == "traceparent" {
			found = true
		}
	}
	if !found {
		t.Errorf("propagator fields = %v, want traceparent", fields)
	}
}

func TestSetupWithEndpoint(t *testing.T) {
	restoreGlobals(t)

	shutdown, err := Setup(context.Background(), Config{
		ServiceName:    "vnode",
		ServiceVersion: "test",
		Environment:    "test",
		Endpoint:       "127.0.0.1:4318",
		Insecure:       true,
		SampleRatio:    1,
	}, nil)
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Errorf("provider = %T, want *sdktrace.TracerProvider", otel.GetTracerProvider())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown() error: %v", err)
	}
}

func TestNewProvider(t *testing.T) {
	res := resource.NewSchemaless(semconv.ServiceName("vnode"))
	recorder := tracetest.NewSpanRecorder()
	tp := NewProvider(res, 1, sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	got, ok := spans[0].Resource().Set().Value(semconv.ServiceNameKey)
	if !ok || got.AsString() != "vnode" {
		t.Errorf("service.name = %v", got)
	}
}

func TestNewProviderRatio(t *testing.T) {
	tests := []struct {
		name    string
		ratio   float64
		sampled bool
	}{
		{"zero falls back to always", 0, true},
		{"out of range falls back to always", 2, true},
		{"full", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := NewProvider(nil, tt.ratio)
			defer func() { _ = tp.Shutdown(context.Background()) }()

			_, span := tp.Tracer("test").Start(context.Background(), "op")
			defer span.End()
			if got := span.SpanContext().IsSampled(); got != tt.sampled {
				t.Errorf("IsSampled() = %v, want %v", got, tt.sampled)
			}
		})
	}
}
