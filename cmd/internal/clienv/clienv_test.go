package clienv_test

import (
	"os"
	"testing"

	"github.com/basewarphq/bwsite/cmd/internal/clienv"
	"go.uber.org/zap/zapcore"
)

//nolint:paralleltest // t.Setenv
func TestParse_Defaults(t *testing.T) {
	unsetenv(t, "LOG_LEVEL", "LOG_FORMAT", "OTEL_EXPORTER")

	e, err := clienv.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.LogLevel != zapcore.InfoLevel {
		t.Errorf("LogLevel = %v, want info", e.LogLevel)
	}
	if e.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want console", e.LogFormat)
	}
	if e.OtelExporter != "none" {
		t.Errorf("OtelExporter = %q, want none", e.OtelExporter)
	}
}

//nolint:paralleltest // t.Setenv
func TestParse_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("OTEL_EXPORTER", "stdout")
	t.Setenv("CDK_DEFAULT_REGION", "eu-west-1")

	e, err := clienv.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.LogLevel != zapcore.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", e.LogLevel)
	}
	if e.LogFormat != "json" || e.OtelExporter != "stdout" || e.Region != "eu-west-1" {
		t.Errorf("unexpected environment: %+v", e)
	}
}

//nolint:paralleltest // t.Setenv
func TestParse_InvalidLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := clienv.Parse(); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}
