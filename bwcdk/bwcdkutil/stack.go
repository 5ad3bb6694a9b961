package bwcdkutil

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/iancoleman/strcase"
)

// SiteStackName returns the CloudFormation stack name for a site stack.
// This is the canonical function for generating site stack names.
func SiteStackName(qualifier, regionIdent string) string {
	base := strcase.ToLowerCamel(fmt.Sprintf("%s-%s", qualifier, regionIdent))
	return base + "Site"
}

// NewStackFromConfig creates the site stack using a validated Config.
// The environment is pinned to the configured account and region because the
// hosted zone lookup needs both at synth time.
func NewStackFromConfig(scope constructs.Construct, cfg *Config) awscdk.Stack {
	stackName := SiteStackName(cfg.Qualifier, cfg.RegionIdent())

	return awscdk.NewStack(scope, jsii.String(stackName), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String(cfg.Account),
			Region:  jsii.String(cfg.Region),
		},
		Description: jsii.String(fmt.Sprintf("%s (region: %s, domain: %s)", stackName, cfg.Region, cfg.DomainName)),
		Synthesizer: awscdk.NewDefaultStackSynthesizer(&awscdk.DefaultStackSynthesizerProps{
			Qualifier: jsii.String(cfg.Qualifier),
		}),
	})
}
