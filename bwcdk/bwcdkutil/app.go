package bwcdkutil

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
)

// SiteConstructor declares the site's infrastructure in the given stack.
type SiteConstructor func(stack awscdk.Stack, cfg *Config)

// AppConfig configures the CDK app setup.
type AppConfig struct {
	// Prefix for optional context keys (e.g., "bwsite-" for "bwsite-qualifier", "bwsite-region").
	Prefix string
	// AssetDir is the default local asset directory when the context does not set one.
	AssetDir string
}

// SetupApp configures a CDK app with a single site stack.
//
// It reads the stack environment, validates all context values upfront and
// panics with a clear error message if any required values are missing or
// invalid, so that no resource is ever declared from an empty domain name.
// It then creates the stack and hands it to newSite.
func SetupApp(app awscdk.App, acfg AppConfig, newSite SiteConstructor) awscdk.Stack {
	senv, err := ParseStackEnv()
	if err != nil {
		panic(err)
	}

	config, err := NewConfig(app, acfg, senv)
	if err != nil {
		panic(err)
	}
	StoreConfig(app, config)

	stack := NewStackFromConfig(app, config)
	newSite(stack, config)

	return stack
}
