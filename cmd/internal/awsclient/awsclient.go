// Package awsclient loads AWS SDK configuration for the CLI and instruments
// it with OpenTelemetry.
package awsclient

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/basewarphq/bwsite/cmd/internal/tracing"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

const configTimeout = 10 * time.Second

// Options select the profile and region. Empty values defer to the SDK's
// default chain.
type Options struct {
	Profile string
	Region  string
}

// LoadConfig loads the default AWS configuration and appends tracing
// middleware when tr is non-nil.
func LoadConfig(ctx context.Context, opts Options, tr *tracing.Tracing) (aws.Config, error) {
	ctx, cancel := context.WithTimeout(ctx, configTimeout)
	defer cancel()

	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return cfg, errors.Wrap(err, "loading AWS config")
	}

	if tr != nil {
		otelaws.AppendMiddlewares(&cfg.APIOptions,
			otelaws.WithTracerProvider(tr.Provider),
			otelaws.WithTextMapPropagator(tr.Propagator),
		)
	}
	return cfg, nil
}

func NewS3(cfg aws.Config) *s3.Client {
	return s3.NewFromConfig(cfg)
}

// CallerIdentityAPI is the subset of the STS client used to resolve the account.
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

func NewSTS(cfg aws.Config) *sts.Client {
	return sts.NewFromConfig(cfg)
}

// AccountID returns the account of the current credentials.
func AccountID(ctx context.Context, api CallerIdentityAPI) (string, error) {
	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", errors.Wrap(err, "getting caller identity")
	}
	account := aws.ToString(out.Account)
	if account == "" {
		return "", errors.New("caller identity has no account")
	}
	return account, nil
}
