package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestHoneycombSetsExporterEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	Honeycomb("secret", "")

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q, want %q", got, honeycombEndpoint)
	}
	want := "x-honeycomb-team=secret,x-honeycomb-dataset=aegean"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestHoneycombWithoutKeyKeepsHeaders(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-existing=1")

	Honeycomb("", "ops")

	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "x-existing=1" {
		t.Errorf("headers = %q, want untouched", got)
	}
}

func TestTracerWithoutSetupIsUsable(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "noop")
	span.End()
}
