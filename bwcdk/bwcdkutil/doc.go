// Package bwcdkutil provides utilities for AWS CDK applications in Go.
//
// # Quick Start
//
// Use [SetupApp] to configure a CDK application that deploys one static site stack:
//
//	func main() {
//	    defer jsii.Close()
//	    app := awscdk.NewApp(nil)
//
//	    bwcdkutil.SetupApp(app, bwcdkutil.AppConfig{
//	        Prefix: "bwsite-",
//	    }, func(stack awscdk.Stack, cfg *bwcdkutil.Config) {
//	        NewSite(stack, cfg)
//	    })
//
//	    app.Synth(nil)
//	}
//
// # CDK Context Configuration
//
// The package reads configuration from CDK context (cdk.json and --context flags).
// With prefix "bwsite-":
//
//	{
//	  "domainName": "example.com",
//	  "bwsite-qualifier": "bwsite",
//	  "bwsite-region": "eu-west-1",
//	  "bwsite-account": "123456789012",
//	  "bwsite-asset-dir": "../../dist"
//	}
//
// The domain name is normally passed on the command line with
// `cdk deploy --context domainName=example.com`. Region and account fall back to
// CDK_DEFAULT_REGION and CDK_DEFAULT_ACCOUNT.
//
// # Features
//
//   - [SetupApp]: validated single-stack app orchestration
//   - [NewStackFromConfig]: stack creation with qualifier and region naming
//   - [ResourceName]: qualifier-prefixed resource identifiers
//   - [ExportOutput]: stack outputs with stable export names
package bwcdkutil
