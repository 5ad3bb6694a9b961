package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/basewarphq/bwsite/cmd/internal/clienv"
	"github.com/basewarphq/bwsite/cmd/internal/cmdexec"
	"github.com/basewarphq/bwsite/cmd/internal/logging"
	"github.com/basewarphq/bwsite/cmd/internal/projcfg"
	"github.com/basewarphq/bwsite/cmd/internal/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Globals are flags shared by every command. Empty values fall back to
// bwsite.toml and the environment.
type Globals struct {
	Domain    string `help:"Apex domain. Overrides site.domain in bwsite.toml."`
	Region    string `help:"AWS region to deploy into. Defaults to CDK_DEFAULT_REGION or the AWS profile's region."`
	Account   string `help:"AWS account ID. Defaults to CDK_DEFAULT_ACCOUNT or the caller identity."`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error). Overrides LOG_LEVEL."`
	LogFormat string `name:"log-format" help:"Log format (console, json). Overrides LOG_FORMAT."`
}

type App struct {
	Globals

	Cdk struct {
		Bootstrap BootstrapCmd `cmd:"" help:"Bootstrap CDK in the target account/region."`
		Synth     SynthCmd     `cmd:"" help:"Synthesize the site stack into cdk.out."`
		Diff      DiffCmd      `cmd:"" help:"Show CDK diff for the site stack."`
		Deploy    DeployCmd    `cmd:"" help:"Deploy the site stack and upload the asset directory."`
		Destroy   DestroyCmd   `cmd:"" help:"Destroy the site stack, including the bucket and its objects."`
	} `cmd:"" help:"CDK commands."`
	Plan   PlanCmd   `cmd:"" help:"Print the planned site topology as YAML."`
	URL    URLCmd    `cmd:"" name:"url" help:"Print the deployed site URL."`
	Verify VerifyCmd `cmd:"" help:"Compare the asset directory with the deployed bucket."`
	Check  struct {
		Template TemplateCmd `cmd:"" help:"Synthesize and validate the site template."`
		UnitTest UnitTestCmd `cmd:"" name:"unit-test" help:"Run all Go tests."`
	} `cmd:"" help:"Check commands."`
	Dev struct {
		Fmt FmtCmd `cmd:"" help:"Format Go files and shell scripts."`
	} `cmd:"" help:"Development commands."`
	Preflight PreflightCmd `cmd:"" help:"Check tools and the asset directory before deploying."`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := clienv.Parse()
	if err != nil {
		return err
	}

	cfg, err := projcfg.Load()
	if err != nil {
		return err
	}

	var app App
	kctx := kong.Parse(&app,
		kong.Name("bwsite"),
		kong.Description("Static website hosting CLI."),
		kong.Bind(cfg),
	)

	log, err := newLogger(app.Globals, env)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()
	tr, err := tracing.New(ctx, env.OtelExporter, env.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		if err := tr.Shutdown(ctx); err != nil {
			log.Warn("flushing traces", zap.Error(err))
		}
	}()

	spanCtx, span := tr.Provider.Tracer("bwsite").Start(ctx, kctx.Command())
	defer span.End()

	log = logging.WithTrace(spanCtx, log)
	sess := newSession(cfg, env, app.Globals, log, cmdexec.New(log), tr)
	kctx.BindTo(spanCtx, (*context.Context)(nil))
	kctx.Bind(sess)

	if err := kctx.Run(); err != nil {
		span.RecordError(err)
		log.Debug("command failed", zap.String("command", kctx.Command()), zap.Error(err))
		return err
	}
	return nil
}

func newLogger(g Globals, env clienv.Environment) (*zap.Logger, error) {
	level := env.LogLevel
	if g.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(g.LogLevel)
		if err != nil {
			return nil, err
		}
		level = lvl
	}

	format := env.LogFormat
	if g.LogFormat != "" {
		format = g.LogFormat
	}

	return logging.New(os.Stderr, level, format)
}
