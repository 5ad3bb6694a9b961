package main

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/basewarphq/bwsite/bwsite"
	"github.com/basewarphq/bwsite/cmd/internal/bincheck"
	"github.com/basewarphq/bwsite/cmd/internal/clienv"
	"github.com/basewarphq/bwsite/cmd/internal/cmdexec"
	"github.com/basewarphq/bwsite/cmd/internal/projcfg"
	"github.com/basewarphq/bwsite/cmd/internal/testutil"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const testCdkJSON = `{"app": "go run ./cdk", "context": {"@aws-cdk/core:bootstrapQualifier": "bwsite"}}`

func testSession(t *testing.T, files map[string]string, g Globals, env clienv.Environment) *session {
	t.Helper()

	files["bwsite.toml"] = "[site]\ndomain = \"example.com\"\n\n[cdk]\ndir = \"infra/cdk\"\n"
	root := testutil.Setup(t, files)

	cfg, err := projcfg.LoadFile(filepath.Join(root, "bwsite.toml"))
	if err != nil {
		t.Fatalf("loading project config: %v", err)
	}
	log := zap.NewNop()
	return newSession(cfg, env, g, log, cmdexec.New(log), nil)
}

func TestResolveTarget_FromEnvironment(t *testing.T) {
	t.Parallel()

	s := testSession(t, map[string]string{"infra/cdk/cdk.json": testCdkJSON},
		Globals{}, clienv.Environment{Region: "eu-west-1", Account: "123456789012"})

	tgt, err := s.resolveTarget(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tgt.Domain != "example.com" || tgt.Region != "eu-west-1" || tgt.Account != "123456789012" {
		t.Errorf("unexpected target: %+v", tgt)
	}
	if tgt.StackName != "bwsiteEuw1Site" {
		t.Errorf("StackName = %q, want bwsiteEuw1Site", tgt.StackName)
	}
	if tgt.AssetDir != filepath.Join(s.cfg.Root, "dist") {
		t.Errorf("AssetDir = %q", tgt.AssetDir)
	}
}

func TestResolveTarget_FlagsWin(t *testing.T) {
	t.Parallel()

	s := testSession(t, map[string]string{"infra/cdk/cdk.json": testCdkJSON},
		Globals{Domain: "other.org", Region: "us-east-1", Account: "210987654321"},
		clienv.Environment{Region: "eu-west-1", Account: "123456789012"})

	tgt, err := s.resolveTarget(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tgt.Domain != "other.org" || tgt.Region != "us-east-1" || tgt.Account != "210987654321" {
		t.Errorf("unexpected target: %+v", tgt)
	}
	if tgt.StackName != "bwsiteUse1Site" {
		t.Errorf("StackName = %q, want bwsiteUse1Site", tgt.StackName)
	}
}

func TestResolveTarget_UnknownRegion(t *testing.T) {
	t.Parallel()

	s := testSession(t, map[string]string{"infra/cdk/cdk.json": testCdkJSON},
		Globals{Region: "mars-north-1", Account: "123456789012"}, clienv.Environment{})

	if _, err := s.resolveTarget(context.Background()); err == nil {
		t.Fatal("expected error for unknown region")
	}
}

func TestTargetContextArgs(t *testing.T) {
	t.Parallel()

	s := testSession(t, map[string]string{"infra/cdk/cdk.json": testCdkJSON},
		Globals{Region: "eu-west-1", Account: "123456789012"}, clienv.Environment{})

	tgt, err := s.resolveTarget(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cctx, err := s.cdkContext()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := tgt.contextArgs(cctx)
	want := []string{
		"--context", "domainName=example.com",
		"--context", "bwsite-asset-dir=" + tgt.AssetDir,
		"--context", "bwsite-region=eu-west-1",
		"--context", "bwsite-account=123456789012",
	}
	if !slices.Equal(got, want) {
		t.Errorf("contextArgs() = %v, want %v", got, want)
	}
}

func TestPlanYAML(t *testing.T) {
	t.Parallel()

	tgt := &target{Domain: "example.com", Region: "eu-west-1", Account: "123456789012", AssetDir: "dist"}
	topo, err := bwsite.Plan(tgt.siteConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := writeYAML(&buf, topo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Bucket struct {
			Name string `yaml:"name"`
		} `yaml:"bucket"`
		WWWRecord struct {
			Target string `yaml:"target"`
		} `yaml:"wwwRecord"`
		Output struct {
			Value string `yaml:"value"`
		} `yaml:"output"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("plan output is not YAML: %v", err)
	}
	if doc.Bucket.Name != "example.com-eu-west-1-123456789012" {
		t.Errorf("bucket name = %q", doc.Bucket.Name)
	}
	if doc.WWWRecord.Target != "apex-record" {
		t.Errorf("www target = %q, want apex-record", doc.WWWRecord.Target)
	}
	if doc.Output.Value != "https://example.com" {
		t.Errorf("output = %q", doc.Output.Value)
	}
}

func TestPreflightChecks(t *testing.T) {
	t.Parallel()

	s := testSession(t, map[string]string{
		"infra/cdk/cdk.json": testCdkJSON,
		"dist/index.html":    "<html></html>",
	}, Globals{}, clienv.Environment{})

	rows, _ := preflightChecks(s, bincheck.NewChecker())
	status := map[string]string{}
	for _, row := range rows {
		status[row[0]] = row[1]
	}
	for _, check := range []string{"domain", "cdk.json", "assets"} {
		if status[check] != "ok" {
			t.Errorf("check %s = %q, want ok", check, status[check])
		}
	}
}

func TestPreflightChecks_Failures(t *testing.T) {
	t.Parallel()

	s := testSession(t, map[string]string{"dist/about.html": "<html></html>"},
		Globals{}, clienv.Environment{})

	rows, failed := preflightChecks(s, bincheck.NewChecker())
	if failed < 2 {
		t.Errorf("expected at least 2 failures, got %d", failed)
	}

	var buf bytes.Buffer
	if err := writeTable(&buf, []string{"CHECK", "STATUS", "DETAIL"}, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "index.html") {
		t.Errorf("table should mention the missing index, got:\n%s", buf.String())
	}
}
