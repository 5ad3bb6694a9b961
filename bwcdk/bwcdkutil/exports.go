package bwcdkutil

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// ExportOutput creates a CfnOutput under a fixed output key, exported as
// "{qualifier}-{key}" in kebab case so other stacks and the CLI can find it
// without knowing the construct path.
func ExportOutput(scope constructs.Construct, key, description string, value *string) awscdk.CfnOutput {
	return awscdk.NewCfnOutput(scope, jsii.String(key), &awscdk.CfnOutputProps{
		Key:         jsii.String(key),
		Description: jsii.String(description),
		Value:       value,
		ExportName:  jsii.String(ResourceName(scope, key, CasingKebab)),
	})
}
