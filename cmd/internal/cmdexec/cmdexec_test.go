package cmdexec_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/basewarphq/bwsite/cmd/internal/cmdexec"
	"github.com/basewarphq/bwsite/cmd/internal/testutil"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestOutput(t *testing.T) {
	t.Parallel()
	testutil.RequireBinary(t, "sh")

	r := cmdexec.New(zap.NewNop())
	out, err := r.Output(context.Background(), t.TempDir(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("Output() = %q, want %q", out, "hello\n")
	}
}

func TestOutput_RelativeDir(t *testing.T) {
	t.Parallel()

	r := cmdexec.New(zap.NewNop())
	_, err := r.Output(context.Background(), "relative", "sh", "-c", "true")
	if err == nil || !strings.Contains(err.Error(), "must be absolute") {
		t.Fatalf("expected absolute dir error, got %v", err)
	}
}

func TestRun_FailureReturnsError(t *testing.T) {
	t.Parallel()
	testutil.RequireBinary(t, "sh")

	var stdout, stderr bytes.Buffer
	r := cmdexec.New(zap.NewNop()).WithOutput(&stdout, &stderr)

	err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("expected error")
	}

	var execErr *cmdexec.Error
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *cmdexec.Error, got %T", err)
	}
	if execErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", execErr.ExitCode)
	}
	if !strings.Contains(execErr.Stderr, "boom") {
		t.Errorf("Stderr = %q, want it to contain %q", execErr.Stderr, "boom")
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("stderr should be streamed, got %q", stderr.String())
	}
}

func TestRun_LogsInvocation(t *testing.T) {
	t.Parallel()
	testutil.RequireBinary(t, "sh")

	core, observed := observer.New(zapcore.InfoLevel)
	var stdout bytes.Buffer
	r := cmdexec.New(zap.New(core)).WithOutput(&stdout, &bytes.Buffer{})

	if err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo ok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.String() != "ok\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "ok\n")
	}

	entries := observed.FilterMessage("exec").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 exec log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["cmd"]; got != "sh" {
		t.Errorf("logged cmd = %v, want sh", got)
	}
}
