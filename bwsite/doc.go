// Package bwsite describes the hosting topology of a static website: a
// DNS-validated certificate, a private origin bucket, an origin access
// identity, a CloudFront distribution, two alias records and a content
// deployment.
//
// # Overview
//
// [Plan] turns a [Config] into a [Topology]. The topology is a plain value
// with no dependency on any provisioning SDK; adapters (see bwcdk/bwcdksite)
// declare the actual resources from it:
//
//	topo, err := bwsite.Plan(bwsite.Config{
//	    DomainName: "example.com",
//	    Region:     "eu-west-1",
//	    Account:    "123456789012",
//	    AssetDir:   "dist",
//	})
//	if err != nil {
//	    return err
//	}
//	bwcdksite.New(stack, bwcdksite.Props{Topology: topo})
//
// # Fixed policy
//
// Every topology uses the same policy choices:
//
//	| Resource      | Policy                                                       |
//	|---------------|--------------------------------------------------------------|
//	| Certificate   | apex + "www." SAN, DNS validation, issued in us-east-1       |
//	| Bucket        | "<domain>-<region>-<account>", block all public access,      |
//	|               | destroyed with its objects on teardown                       |
//	| Distribution  | apex + www aliases, GET/HEAD only, compress, redirect to     |
//	|               | HTTPS, CachingOptimized, 403/404 -> /index.html (TTL 0),     |
//	|               | PriceClass_100, TLSv1.2_2021, HTTP/2, IPv6                   |
//	| Records       | apex A alias -> distribution, www A alias -> apex record     |
//	| Deployment    | upload AssetDir, invalidate "/*"                             |
//	| Output        | DeployUrl = "https://<domain>"                               |
package bwsite
