package bwcdksite

import (
	"fmt"
	"slices"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/basewarphq/bwsite/bwsite"
)

func blockPublicAccess(block bool) awss3.BlockPublicAccess {
	if !block {
		panic("bwcdksite: origin bucket must block public access")
	}
	return awss3.BlockPublicAccess_BLOCK_ALL()
}

func removalPolicy(destroy bool) awscdk.RemovalPolicy {
	if destroy {
		return awscdk.RemovalPolicy_DESTROY
	}
	return awscdk.RemovalPolicy_RETAIN
}

func allowedMethods(methods []string) awscloudfront.AllowedMethods {
	if !slices.Equal(methods, []string{"GET", "HEAD"}) {
		panic(fmt.Sprintf("bwcdksite: unsupported allowed methods %v", methods))
	}
	return awscloudfront.AllowedMethods_ALLOW_GET_HEAD()
}

func cachedMethods(methods []string) awscloudfront.CachedMethods {
	if !slices.Equal(methods, []string{"GET", "HEAD"}) {
		panic(fmt.Sprintf("bwcdksite: unsupported cached methods %v", methods))
	}
	return awscloudfront.CachedMethods_CACHE_GET_HEAD()
}

func viewerProtocolPolicy(policy string) awscloudfront.ViewerProtocolPolicy {
	if policy != bwsite.ViewerProtocolRedirectToHTTPS {
		panic(fmt.Sprintf("bwcdksite: unsupported viewer protocol policy %q", policy))
	}
	return awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS
}

func cachePolicy(name string) awscloudfront.ICachePolicy {
	if name != bwsite.CachePolicyCachingOptimized {
		panic(fmt.Sprintf("bwcdksite: unsupported cache policy %q", name))
	}
	return awscloudfront.CachePolicy_CACHING_OPTIMIZED()
}

func priceClass(class string) awscloudfront.PriceClass {
	if class != bwsite.PriceClass100 {
		panic(fmt.Sprintf("bwcdksite: unsupported price class %q", class))
	}
	return awscloudfront.PriceClass_PRICE_CLASS_100
}

func securityPolicy(version string) awscloudfront.SecurityPolicyProtocol {
	if version != bwsite.SecurityPolicyTLSv12_2021 {
		panic(fmt.Sprintf("bwcdksite: unsupported minimum protocol version %q", version))
	}
	return awscloudfront.SecurityPolicyProtocol_TLS_V1_2_2021
}

func httpVersion(version string) awscloudfront.HttpVersion {
	if version != bwsite.HTTPVersion2 {
		panic(fmt.Sprintf("bwcdksite: unsupported HTTP version %q", version))
	}
	return awscloudfront.HttpVersion_HTTP2
}
