package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/basewarphq/bwsite/bwcdk/bwcdkutil"
	"github.com/basewarphq/bwsite/infra/cdk"
)

const projectPrefix = "bwsite"

func main() {
	defer jsii.Close()
	app := awscdk.NewApp(nil)

	bwcdkutil.SetupApp(app, bwcdkutil.AppConfig{
		Prefix:   projectPrefix + "-",
		AssetDir: "../../dist",
	}, func(stack awscdk.Stack, cfg *bwcdkutil.Config) {
		cdk.NewSite(stack, cfg)
	})

	app.Synth(nil)
}
