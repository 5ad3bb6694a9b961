package main

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/basewarphq/bwsite/bwsite"
	"github.com/basewarphq/bwsite/cmd/internal/awsclient"
	"github.com/basewarphq/bwsite/cmd/internal/cdkctx"
	"github.com/basewarphq/bwsite/cmd/internal/clienv"
	"github.com/basewarphq/bwsite/cmd/internal/cmdexec"
	"github.com/basewarphq/bwsite/cmd/internal/projcfg"
	"github.com/basewarphq/bwsite/cmd/internal/tracing"
	infracdk "github.com/basewarphq/bwsite/infra/cdk"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// session carries what every command needs once flags are parsed.
type session struct {
	cfg     *projcfg.Config
	env     clienv.Environment
	globals Globals
	log     *zap.Logger
	runner  *cmdexec.Runner
	tracing *tracing.Tracing

	awsCfg *aws.Config
}

func newSession(
	cfg *projcfg.Config, env clienv.Environment, g Globals,
	log *zap.Logger, runner *cmdexec.Runner, tr *tracing.Tracing,
) *session {
	return &session{cfg: cfg, env: env, globals: g, log: log, runner: runner, tracing: tr}
}

// target is the resolved deployment target of the site.
type target struct {
	Domain    string
	Region    string
	Account   string
	AssetDir  string
	StackName string
}

func (s *session) domain() string {
	return firstNonEmpty(s.globals.Domain, s.cfg.Site.Domain)
}

func (s *session) cdkContext() (*cdkctx.CDKContext, error) {
	return cdkctx.Load(s.cfg.CdkDir())
}

func (s *session) awsConfig(ctx context.Context, region string) (aws.Config, error) {
	if s.awsCfg != nil && (region == "" || s.awsCfg.Region == region) {
		return *s.awsCfg, nil
	}
	cfg, err := awsclient.LoadConfig(ctx, awsclient.Options{
		Profile: s.env.AWSProfile,
		Region:  region,
	}, s.tracing)
	if err != nil {
		return cfg, err
	}
	s.awsCfg = &cfg
	return cfg, nil
}

// resolveTarget determines region and account from flags, then the
// environment, then the AWS SDK.
func (s *session) resolveTarget(ctx context.Context) (*target, error) {
	t := &target{
		Domain:   s.domain(),
		AssetDir: s.cfg.DistDir(),
		Region:   firstNonEmpty(s.globals.Region, s.env.Region),
		Account:  firstNonEmpty(s.globals.Account, s.env.Account),
	}

	if t.Region == "" {
		cfg, err := s.awsConfig(ctx, "")
		if err != nil {
			return nil, err
		}
		if cfg.Region == "" {
			return nil, errors.New("no region: pass --region or configure one for the AWS profile")
		}
		t.Region = cfg.Region
	}

	if t.Account == "" {
		cfg, err := s.awsConfig(ctx, t.Region)
		if err != nil {
			return nil, err
		}
		account, err := awsclient.AccountID(ctx, awsclient.NewSTS(cfg))
		if err != nil {
			return nil, errors.Wrap(err, "no account: pass --account or provide AWS credentials")
		}
		t.Account = account
	}

	cctx, err := s.cdkContext()
	if err != nil {
		return nil, err
	}
	t.StackName, err = cctx.StackName(t.Region)
	if err != nil {
		return nil, err
	}

	s.log.Debug("resolved target",
		zap.String("domain", t.Domain),
		zap.String("region", t.Region),
		zap.String("account", t.Account),
		zap.String("stack", t.StackName))
	return t, nil
}

// siteConfig is the config the CDK app plans the site from.
func (t *target) siteConfig() bwsite.Config {
	return bwsite.Config{
		DomainName: t.Domain,
		Region:     t.Region,
		Account:    t.Account,
		AssetDir:   t.AssetDir,
		Comment:    infracdk.SiteComment,
	}
}

func (t *target) contextArgs(cctx *cdkctx.CDKContext) []string {
	return cctx.ContextArgs(cdkctx.Args{
		DomainName: t.Domain,
		AssetDir:   t.AssetDir,
		Region:     t.Region,
		Account:    t.Account,
	})
}

// cdk runs a cdk subcommand against the site stack.
func (s *session) cdk(ctx context.Context, t *target, args ...string) error {
	cctx, err := s.cdkContext()
	if err != nil {
		return err
	}
	return s.runner.Run(ctx, s.cfg.CdkDir(), "cdk", append(args, t.contextArgs(cctx)...)...)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
