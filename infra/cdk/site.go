package cdk

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/basewarphq/bwsite/bwcdk/bwcdksite"
	"github.com/basewarphq/bwsite/bwcdk/bwcdkutil"
	"github.com/basewarphq/bwsite/bwsite"
)

// SiteComment is attached to the origin access identity.
const SiteComment = "bwsite static site"

// NewSite plans the site for the validated config and declares it in stack.
func NewSite(stack awscdk.Stack, cfg *bwcdkutil.Config) bwcdksite.Site {
	topo, err := bwsite.Plan(SiteConfig(cfg))
	if err != nil {
		panic(err)
	}

	return bwcdksite.New(stack, bwcdksite.Props{Topology: topo})
}

// SiteConfig maps the CDK app config onto the site config.
func SiteConfig(cfg *bwcdkutil.Config) bwsite.Config {
	return bwsite.Config{
		DomainName: cfg.DomainName,
		Region:     cfg.Region,
		Account:    cfg.Account,
		AssetDir:   cfg.AssetDir,
		Comment:    SiteComment,
	}
}
