package bwsite

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// maxBucketNameLength is the S3 limit on bucket names.
const maxBucketNameLength = 63

// fallbackStatuses are the origin errors rewritten to the root document so a
// single-page app can route client side.
var fallbackStatuses = []int{403, 404}

// WWWDomainName returns the "www" alias of an apex domain.
func WWWDomainName(domainName string) string {
	return "www." + domainName
}

// BucketName returns the deterministic origin bucket name.
func BucketName(domainName, region, account string) string {
	return domainName + "-" + region + "-" + account
}

// DeployURL returns the public HTTPS URL of the site.
func DeployURL(domainName string) string {
	return "https://" + domainName
}

// Plan validates cfg and returns the topology to declare for it.
func Plan(cfg Config) (*Topology, error) {
	cfg = cfg.normalized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	www := WWWDomainName(cfg.DomainName)

	bucketName := BucketName(cfg.DomainName, cfg.Region, cfg.Account)
	if len(bucketName) > maxBucketNameLength {
		return nil, errors.Mark(errors.Newf(
			"bucket name %q exceeds %d characters, use a shorter domain name",
			bucketName, maxBucketNameLength), ErrInvalidConfig)
	}

	errorResponses := make([]ErrorResponse, 0, len(fallbackStatuses))
	for _, status := range fallbackStatuses {
		errorResponses = append(errorResponses, ErrorResponse{
			HTTPStatus:         status,
			ResponseHTTPStatus: status,
			ResponsePagePath:   "/" + DefaultRootObject,
			TTLSeconds:         0,
		})
	}

	return &Topology{
		DomainName:    cfg.DomainName,
		WWWDomainName: www,
		Region:        cfg.Region,
		Account:       cfg.Account,
		HostedZone: HostedZone{
			DomainName: cfg.DomainName,
		},
		Certificate: Certificate{
			DomainName:              cfg.DomainName,
			SubjectAlternativeNames: []string{www},
			Region:                  CertificateRegion,
			Validation:              ValidationDNS,
		},
		Bucket: Bucket{
			Name:              bucketName,
			BlockPublicAccess: true,
			DestroyOnRemoval:  true,
			AutoDeleteObjects: true,
		},
		OriginAccessIdentity: OriginAccessIdentity{
			Comment: cfg.Comment,
		},
		Distribution: Distribution{
			DomainNames: []string{cfg.DomainName, www},
			DefaultBehavior: Behavior{
				Compress:             true,
				AllowedMethods:       []string{"GET", "HEAD"},
				CachedMethods:        []string{"GET", "HEAD"},
				ViewerProtocolPolicy: ViewerProtocolRedirectToHTTPS,
				CachePolicy:          CachePolicyCachingOptimized,
			},
			ErrorResponses:         errorResponses,
			PriceClass:             PriceClass100,
			Enabled:                true,
			MinimumProtocolVersion: SecurityPolicyTLSv12_2021,
			HTTPVersion:            HTTPVersion2,
			DefaultRootObject:      DefaultRootObject,
			EnableIPv6:             true,
		},
		ApexRecord: AliasRecord{
			RecordName: cfg.DomainName,
			Type:       RecordTypeA,
			Target:     AliasDistribution,
		},
		WWWRecord: AliasRecord{
			RecordName: www,
			Type:       RecordTypeA,
			Target:     AliasApexRecord,
		},
		Deployment: Deployment{
			SourceDir:         cfg.AssetDir,
			DistributionPaths: []string{"/*"},
		},
		Output: Output{
			Key:   DeployURLOutputKey,
			Value: DeployURL(cfg.DomainName),
		},
	}, nil
}

// ServesBothNames reports whether the distribution serves the apex and www names
// and both records resolve to it.
func (t *Topology) ServesBothNames() bool {
	return slices.Contains(t.Distribution.DomainNames, t.DomainName) &&
		slices.Contains(t.Distribution.DomainNames, t.WWWDomainName) &&
		t.ApexRecord.Target == AliasDistribution &&
		t.WWWRecord.Target == AliasApexRecord
}
