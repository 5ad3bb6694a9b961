// Package bwcdkcerts provides a DNS-validated ACM certificate construct for
// sites served through CloudFront.
//
// CloudFront only accepts certificates from us-east-1, so the certificate is
// requested there through a DNS-validated certificate custom resource while
// the rest of the stack may live in any region. Validation records are written
// to the provided Route53 hosted zone.
package bwcdkcerts

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/basewarphq/bwsite/bwcdk/bwcdkparams"
)

const paramsNamespace = "certs"

// CertificateArnParamName is the parameter name the certificate ARN is stored under.
const CertificateArnParamName = "site-cert-arn"

// Certificates provides access to the site certificate.
type Certificates interface {
	// SiteCertificate returns the ACM certificate covering the site's domain names.
	SiteCertificate() awscertificatemanager.ICertificate
}

// Props configures the Certificates construct.
type Props struct {
	// HostedZone is the Route53 hosted zone used for DNS validation.
	// Required.
	HostedZone awsroute53.IHostedZone
	// DomainName is the certificate's primary domain name.
	// Required.
	DomainName *string
	// SubjectAlternativeNames are the additional names the certificate covers.
	SubjectAlternativeNames *[]*string
	// Region is where the certificate is requested.
	// Required.
	Region *string
}

type certificates struct {
	certificate awscertificatemanager.ICertificate
}

// New creates a Certificates construct with a DNS-validated certificate for
// the domain name and its alternative names, and stores its ARN in SSM.
func New(scope constructs.Construct, props Props) Certificates {
	scope = constructs.NewConstruct(scope, jsii.String("Certificates"))
	con := &certificates{}

	//nolint:staticcheck // cross-region validation for CloudFront needs the custom resource
	con.certificate = awscertificatemanager.NewDnsValidatedCertificate(scope, jsii.String("SiteCertificate"),
		&awscertificatemanager.DnsValidatedCertificateProps{
			DomainName:              props.DomainName,
			SubjectAlternativeNames: props.SubjectAlternativeNames,
			HostedZone:              props.HostedZone,
			Region:                  props.Region,
			Validation:              awscertificatemanager.CertificateValidation_FromDns(props.HostedZone),
		})

	bwcdkparams.Store(scope, "CertificateArnParam", paramsNamespace, CertificateArnParamName,
		con.certificate.CertificateArn())

	return con
}

func (c *certificates) SiteCertificate() awscertificatemanager.ICertificate {
	return c.certificate
}
