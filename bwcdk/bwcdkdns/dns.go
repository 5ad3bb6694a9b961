// Package bwcdkdns provides Route53 constructs for a site served from an
// existing public hosted zone.
//
// The hosted zone is never created here. It is looked up by domain name at
// synth time, so the stack must have an explicit account and region.
package bwcdkdns

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// DNS provides access to the site's Route53 hosted zone.
type DNS interface {
	// HostedZone returns the looked-up hosted zone.
	HostedZone() awsroute53.IHostedZone
	// AliasDistribution creates an A alias record pointing at a CloudFront distribution.
	AliasDistribution(id, recordName string, dist awscloudfront.IDistribution) awsroute53.ARecord
	// AliasRecord creates an A alias record pointing at another record in the same zone.
	AliasRecord(id, recordName string, target awsroute53.IRecordSet) awsroute53.ARecord
}

// Props configures the DNS construct.
type Props struct {
	// ZoneDomainName is the domain name of the hosted zone (e.g., "example.com").
	// Required.
	ZoneDomainName *string
}

type dns struct {
	scope      constructs.Construct
	hostedZone awsroute53.IHostedZone
}

// New creates a DNS construct that looks up an existing hosted zone.
func New(scope constructs.Construct, props Props) DNS {
	if props.ZoneDomainName == nil || *props.ZoneDomainName == "" {
		panic("bwcdkdns: ZoneDomainName is required")
	}

	scope = constructs.NewConstruct(scope, jsii.String("DNS"))
	con := &dns{scope: scope}

	con.hostedZone = awsroute53.HostedZone_FromLookup(scope, jsii.String("HostedZone"),
		&awsroute53.HostedZoneProviderProps{
			DomainName: props.ZoneDomainName,
		})

	return con
}

func (d *dns) HostedZone() awsroute53.IHostedZone {
	return d.hostedZone
}

func (d *dns) AliasDistribution(id, recordName string, dist awscloudfront.IDistribution) awsroute53.ARecord {
	return awsroute53.NewARecord(d.scope, jsii.String(id), &awsroute53.ARecordProps{
		Zone:       d.hostedZone,
		RecordName: jsii.String(recordName),
		Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(dist)),
	})
}

func (d *dns) AliasRecord(id, recordName string, target awsroute53.IRecordSet) awsroute53.ARecord {
	return awsroute53.NewARecord(d.scope, jsii.String(id), &awsroute53.ARecordProps{
		Zone:       d.hostedZone,
		RecordName: jsii.String(recordName),
		Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewRoute53RecordTarget(target)),
	})
}
