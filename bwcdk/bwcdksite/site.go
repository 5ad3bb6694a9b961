// Package bwcdksite declares a static website from a planned bwsite.Topology.
//
// The construct looks up the hosted zone, requests the certificate, creates
// the private origin bucket with its origin access identity, the CloudFront
// distribution, the apex and www alias records, the content deployment and
// the DeployUrl output, in that order. Every policy value comes from the
// topology; this package only maps plain values onto CDK types.
package bwcdksite

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3deployment"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/basewarphq/bwsite/bwcdk/bwcdkcerts"
	"github.com/basewarphq/bwsite/bwcdk/bwcdkdns"
	"github.com/basewarphq/bwsite/bwcdk/bwcdkloggroup"
	"github.com/basewarphq/bwsite/bwcdk/bwcdkparams"
	"github.com/basewarphq/bwsite/bwcdk/bwcdkutil"
	"github.com/basewarphq/bwsite/bwsite"
)

const paramsNamespace = "site"

// Parameter names stored under /{qualifier}/site/.
const (
	BucketNameParamName     = "bucket-name"
	DistributionIDParamName = "distribution-id"
)

// Site provides access to the declared site resources.
type Site interface {
	// Bucket returns the private origin bucket.
	Bucket() awss3.IBucket
	// Distribution returns the CloudFront distribution serving the site.
	Distribution() awscloudfront.IDistribution
	// Certificate returns the viewer certificate.
	Certificate() awscertificatemanager.ICertificate
	// ApexRecord returns the apex alias record.
	ApexRecord() awsroute53.ARecord
	// WWWRecord returns the www alias record.
	WWWRecord() awsroute53.ARecord
}

// Props configures the Site construct.
type Props struct {
	// Topology is the planned site, see bwsite.Plan.
	// Required.
	Topology *bwsite.Topology
}

type site struct {
	bucket       awss3.IBucket
	distribution awscloudfront.IDistribution
	certificate  awscertificatemanager.ICertificate
	apexRecord   awsroute53.ARecord
	wwwRecord    awsroute53.ARecord
}

// New creates the Site construct. It panics if Props.Topology is nil or holds
// a policy value this package cannot map.
func New(scope constructs.Construct, props Props) Site {
	if props.Topology == nil {
		panic("bwcdksite: Props.Topology is required")
	}
	topo := props.Topology

	scope = constructs.NewConstruct(scope, jsii.String("Site"))
	con := &site{}

	dns := bwcdkdns.New(scope, bwcdkdns.Props{
		ZoneDomainName: jsii.String(topo.HostedZone.DomainName),
	})

	certs := bwcdkcerts.New(scope, bwcdkcerts.Props{
		HostedZone:              dns.HostedZone(),
		DomainName:              jsii.String(topo.Certificate.DomainName),
		SubjectAlternativeNames: jsii.Strings(topo.Certificate.SubjectAlternativeNames...),
		Region:                  jsii.String(topo.Certificate.Region),
	})
	con.certificate = certs.SiteCertificate()

	bucket := awss3.NewBucket(scope, jsii.String("Bucket"), &awss3.BucketProps{
		BucketName:        jsii.String(topo.Bucket.Name),
		BlockPublicAccess: blockPublicAccess(topo.Bucket.BlockPublicAccess),
		PublicReadAccess:  jsii.Bool(false),
		RemovalPolicy:     removalPolicy(topo.Bucket.DestroyOnRemoval),
		AutoDeleteObjects: jsii.Bool(topo.Bucket.AutoDeleteObjects),
	})
	con.bucket = bucket

	oai := awscloudfront.NewOriginAccessIdentity(scope, jsii.String("OriginAccessIdentity"),
		&awscloudfront.OriginAccessIdentityProps{
			Comment: jsii.String(topo.OriginAccessIdentity.Comment),
		})

	con.distribution = newDistribution(scope, topo.Distribution, bucket, oai, con.certificate)

	con.apexRecord = dns.AliasDistribution("ApexRecord", topo.ApexRecord.RecordName, con.distribution)
	switch topo.WWWRecord.Target {
	case bwsite.AliasApexRecord:
		con.wwwRecord = dns.AliasRecord("WWWRecord", topo.WWWRecord.RecordName, con.apexRecord)
	case bwsite.AliasDistribution:
		con.wwwRecord = dns.AliasDistribution("WWWRecord", topo.WWWRecord.RecordName, con.distribution)
	default:
		panic("bwcdksite: unsupported www alias target " + topo.WWWRecord.Target.String())
	}

	deployLogs := bwcdkloggroup.New(scope, "DeploymentLogs", bwcdkloggroup.Props{
		Purpose: jsii.String("site content deployment"),
	})

	awss3deployment.NewBucketDeployment(scope, jsii.String("Deployment"), &awss3deployment.BucketDeploymentProps{
		Sources:           &[]awss3deployment.ISource{awss3deployment.Source_Asset(jsii.String(topo.Deployment.SourceDir), nil)},
		DestinationBucket: bucket,
		Distribution:      con.distribution,
		DistributionPaths: jsii.Strings(topo.Deployment.DistributionPaths...),
		LogGroup:          deployLogs.LogGroup(),
	})

	bwcdkparams.Store(scope, "BucketNameParam", paramsNamespace, BucketNameParamName, bucket.BucketName())
	bwcdkparams.Store(scope, "DistributionIDParam", paramsNamespace, DistributionIDParamName,
		con.distribution.DistributionId())

	// The output lives on the stack so its logical ID is exactly the output key.
	bwcdkutil.ExportOutput(awscdk.Stack_Of(scope), topo.Output.Key,
		"Public URL of the site", jsii.String(topo.Output.Value))

	return con
}

func newDistribution(
	scope constructs.Construct,
	dist bwsite.Distribution,
	bucket awss3.IBucket,
	oai awscloudfront.IOriginAccessIdentity,
	cert awscertificatemanager.ICertificate,
) awscloudfront.Distribution {
	errorResponses := make([]*awscloudfront.ErrorResponse, 0, len(dist.ErrorResponses))
	for _, er := range dist.ErrorResponses {
		errorResponses = append(errorResponses, &awscloudfront.ErrorResponse{
			HttpStatus:         jsii.Number(float64(er.HTTPStatus)),
			ResponseHttpStatus: jsii.Number(float64(er.ResponseHTTPStatus)),
			ResponsePagePath:   jsii.String(er.ResponsePagePath),
			Ttl:                awscdk.Duration_Seconds(jsii.Number(float64(er.TTLSeconds))),
		})
	}

	return awscloudfront.NewDistribution(scope, jsii.String("Distribution"), &awscloudfront.DistributionProps{
		DomainNames: jsii.Strings(dist.DomainNames...),
		Certificate: cert,
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			//nolint:staticcheck // S3Origin keeps the origin access identity model
			Origin: awscloudfrontorigins.NewS3Origin(bucket, &awscloudfrontorigins.S3OriginProps{
				OriginAccessIdentity: oai,
			}),
			Compress:             jsii.Bool(dist.DefaultBehavior.Compress),
			AllowedMethods:       allowedMethods(dist.DefaultBehavior.AllowedMethods),
			CachedMethods:        cachedMethods(dist.DefaultBehavior.CachedMethods),
			ViewerProtocolPolicy: viewerProtocolPolicy(dist.DefaultBehavior.ViewerProtocolPolicy),
			CachePolicy:          cachePolicy(dist.DefaultBehavior.CachePolicy),
		},
		ErrorResponses:         &errorResponses,
		PriceClass:             priceClass(dist.PriceClass),
		Enabled:                jsii.Bool(dist.Enabled),
		MinimumProtocolVersion: securityPolicy(dist.MinimumProtocolVersion),
		HttpVersion:            httpVersion(dist.HTTPVersion),
		DefaultRootObject:      jsii.String(dist.DefaultRootObject),
		EnableIpv6:             jsii.Bool(dist.EnableIPv6),
	})
}

func (s *site) Bucket() awss3.IBucket                           { return s.bucket }
func (s *site) Distribution() awscloudfront.IDistribution       { return s.distribution }
func (s *site) Certificate() awscertificatemanager.ICertificate { return s.certificate }
func (s *site) ApexRecord() awsroute53.ARecord                  { return s.apexRecord }
func (s *site) WWWRecord() awsroute53.ARecord                   { return s.wwwRecord }
