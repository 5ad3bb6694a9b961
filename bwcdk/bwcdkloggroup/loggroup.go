// Package bwcdkloggroup provides a reusable CloudWatch Log Group construct
// with standardized retention and removal policy.
//
// Log groups can optionally export their names as stack outputs for
// discovery via AWS CLI queries.
package bwcdkloggroup

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// DefaultRetention is used when Props.Retention is not set.
const DefaultRetention = awslogs.RetentionDays_ONE_WEEK

// LogGroup provides access to a CloudWatch Log Group with standardized configuration.
type LogGroup interface {
	// LogGroup returns the underlying CDK log group.
	LogGroup() awslogs.ILogGroup
}

// Props configures the LogGroup construct.
type Props struct {
	// Purpose describes what this log group is for (e.g., "site content deployment").
	// Used in the CfnOutput description.
	// Required.
	Purpose *string
	// Retention overrides DefaultRetention.
	Retention awslogs.RetentionDays
	// WithOutput exports the log group name as a stack output.
	WithOutput bool
}

type logGroup struct {
	lg awslogs.ILogGroup
}

// New creates a LogGroup construct with standardized configuration.
//
// The log group is created with:
//   - Retention: Props.Retention, ONE_WEEK when unset
//   - RemovalPolicy: DESTROY (log groups are deleted with the stack)
//
// With Props.WithOutput a CfnOutput is created with:
//   - Key: "{id}LogGroup"
//   - Value: The log group name (for CLI queries)
//   - Description: "CloudWatch Log Group for {Purpose}"
func New(scope constructs.Construct, id string, props Props) LogGroup {
	scope = constructs.NewConstruct(scope, jsii.String(id))
	con := &logGroup{}

	retention := props.Retention
	if retention == "" {
		retention = DefaultRetention
	}

	con.lg = awslogs.NewLogGroup(scope, jsii.String("LogGroup"), &awslogs.LogGroupProps{
		Retention:     retention,
		RemovalPolicy: awscdk.RemovalPolicy_DESTROY,
	})

	if props.WithOutput {
		awscdk.NewCfnOutput(scope, jsii.String("LogGroupOutput"), &awscdk.CfnOutputProps{
			Key:         jsii.String(id + "LogGroup"),
			Description: jsii.String("CloudWatch Log Group for " + *props.Purpose),
			Value:       con.lg.LogGroupName(),
		})
	}

	return con
}

func (l *logGroup) LogGroup() awslogs.ILogGroup {
	return l.lg
}
