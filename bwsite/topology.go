package bwsite

// Values mirror the CloudFormation spelling so a topology can be compared with
// a synthesized template without translation.
const (
	// CertificateRegion is the region CloudFront requires viewer certificates to live in.
	CertificateRegion = "us-east-1"

	ValidationDNS = "DNS"

	ViewerProtocolRedirectToHTTPS = "redirect-to-https"
	CachePolicyCachingOptimized   = "CachingOptimized"
	PriceClass100                 = "PriceClass_100"
	SecurityPolicyTLSv12_2021     = "TLSv1.2_2021"
	HTTPVersion2                  = "http2"

	RecordTypeA = "A"

	// DefaultRootObject is served for "/" and used as the single-page-app fallback.
	DefaultRootObject = "index.html"

	// DeployURLOutputKey is the CloudFormation output key of the site URL.
	DeployURLOutputKey = "DeployUrl"
)

// Topology is the full set of resources declared for one site.
type Topology struct {
	DomainName    string `yaml:"domainName"`
	WWWDomainName string `yaml:"wwwDomainName"`
	Region        string `yaml:"region"`
	Account       string `yaml:"account"`

	HostedZone           HostedZone           `yaml:"hostedZone"`
	Certificate          Certificate          `yaml:"certificate"`
	Bucket               Bucket               `yaml:"bucket"`
	OriginAccessIdentity OriginAccessIdentity `yaml:"originAccessIdentity"`
	Distribution         Distribution         `yaml:"distribution"`
	ApexRecord           AliasRecord          `yaml:"apexRecord"`
	WWWRecord            AliasRecord          `yaml:"wwwRecord"`
	Deployment           Deployment           `yaml:"deployment"`
	Output               Output               `yaml:"output"`
}

// HostedZone is the existing public zone that is looked up, never created.
type HostedZone struct {
	DomainName string `yaml:"domainName"`
}

// Certificate is the DNS-validated certificate covering the apex and www names.
type Certificate struct {
	DomainName              string   `yaml:"domainName"`
	SubjectAlternativeNames []string `yaml:"subjectAlternativeNames"`
	Region                  string   `yaml:"region"`
	Validation              string   `yaml:"validation"`
}

// Bucket is the private origin bucket holding the site content.
type Bucket struct {
	Name              string `yaml:"name"`
	BlockPublicAccess bool   `yaml:"blockPublicAccess"`
	DestroyOnRemoval  bool   `yaml:"destroyOnRemoval"`
	AutoDeleteObjects bool   `yaml:"autoDeleteObjects"`
}

// OriginAccessIdentity is the identity CloudFront uses to read the bucket.
type OriginAccessIdentity struct {
	Comment string `yaml:"comment"`
}

// Distribution is the CloudFront distribution serving the site.
type Distribution struct {
	DomainNames            []string        `yaml:"domainNames"`
	DefaultBehavior        Behavior        `yaml:"defaultBehavior"`
	ErrorResponses         []ErrorResponse `yaml:"errorResponses"`
	PriceClass             string          `yaml:"priceClass"`
	Enabled                bool            `yaml:"enabled"`
	MinimumProtocolVersion string          `yaml:"minimumProtocolVersion"`
	HTTPVersion            string          `yaml:"httpVersion"`
	DefaultRootObject      string          `yaml:"defaultRootObject"`
	EnableIPv6             bool            `yaml:"enableIpv6"`
}

// Behavior is the distribution's default cache behavior.
type Behavior struct {
	Compress             bool     `yaml:"compress"`
	AllowedMethods       []string `yaml:"allowedMethods"`
	CachedMethods        []string `yaml:"cachedMethods"`
	ViewerProtocolPolicy string   `yaml:"viewerProtocolPolicy"`
	CachePolicy          string   `yaml:"cachePolicy"`
}

// ErrorResponse rewrites an origin error to a fallback page.
type ErrorResponse struct {
	HTTPStatus         int    `yaml:"httpStatus"`
	ResponseHTTPStatus int    `yaml:"responseHttpStatus"`
	ResponsePagePath   string `yaml:"responsePagePath"`
	TTLSeconds         int    `yaml:"ttlSeconds"`
}

// AliasTarget names what an alias record points at.
type AliasTarget int

const (
	// AliasDistribution points at the CloudFront distribution.
	AliasDistribution AliasTarget = iota
	// AliasApexRecord points at the apex record set.
	AliasApexRecord
)

func (t AliasTarget) String() string {
	switch t {
	case AliasDistribution:
		return "distribution"
	case AliasApexRecord:
		return "apex-record"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the target by name.
func (t AliasTarget) MarshalYAML() (any, error) {
	return t.String(), nil
}

// AliasRecord is an A alias record in the hosted zone.
type AliasRecord struct {
	RecordName string      `yaml:"recordName"`
	Type       string      `yaml:"type"`
	Target     AliasTarget `yaml:"target"`
}

// Deployment uploads the asset directory and invalidates the distribution.
type Deployment struct {
	SourceDir         string   `yaml:"sourceDir"`
	DistributionPaths []string `yaml:"distributionPaths"`
}

// Output is the stack output carrying the site URL.
type Output struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}
