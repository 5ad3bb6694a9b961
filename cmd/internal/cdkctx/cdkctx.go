// Package cdkctx reads the CDK app's static context from cdk.json and builds
// the --context flags the CLI passes to the cdk toolchain.
package cdkctx

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/basewarphq/bwsite/bwcdk/bwcdkutil"
	"github.com/cockroachdb/errors"
)

type CDKContext struct {
	Qualifier string
	Prefix    string
}

// Load reads the bootstrap qualifier from cdk.json in cdkDir.
func Load(cdkDir string) (*CDKContext, error) {
	qualifier, err := readQualifier(cdkDir)
	if err != nil {
		return nil, err
	}

	return &CDKContext{
		Qualifier: qualifier,
		Prefix:    qualifier + "-",
	}, nil
}

// StackName returns the site stack name for a region.
func (c *CDKContext) StackName(region string) (string, error) {
	if !bwcdkutil.IsKnownRegion(region) {
		return "", errors.Newf("unknown region %q", region)
	}
	return bwcdkutil.SiteStackName(c.Qualifier, bwcdkutil.RegionIdentFor(region)), nil
}

// ResolveStackRegion returns the region encoded in a site stack name.
func (c *CDKContext) ResolveStackRegion(stackName string) (string, bool) {
	rest := strings.TrimPrefix(stackName, c.Qualifier)
	if rest == stackName || len(rest) < 4 {
		return "", false
	}
	return bwcdkutil.RegionForIdent(rest[:4])
}

// Args holds the per-invocation context values.
type Args struct {
	DomainName string
	AssetDir   string
	Region     string
	Account    string
}

// ContextArgs returns the cdk CLI flags carrying the given values.
func (c *CDKContext) ContextArgs(a Args) []string {
	args := []string{"--context", bwcdkutil.DomainNameContextKey + "=" + a.DomainName}
	if a.AssetDir != "" {
		args = append(args, "--context", c.Prefix+"asset-dir="+a.AssetDir)
	}
	if a.Region != "" {
		args = append(args, "--context", c.Prefix+"region="+a.Region)
	}
	if a.Account != "" {
		args = append(args, "--context", c.Prefix+"account="+a.Account)
	}
	return args
}

func readQualifier(cdkDir string) (string, error) {
	cdkJSON := filepath.Join(cdkDir, "cdk.json")
	data, err := os.ReadFile(cdkJSON)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", cdkJSON)
	}

	var cfg struct {
		Context map[string]json.RawMessage `json:"context"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return "", errors.Wrapf(err, "parsing %s", cdkJSON)
	}

	raw, ok := cfg.Context["@aws-cdk/core:bootstrapQualifier"]
	if !ok {
		return "", errors.Newf("missing @aws-cdk/core:bootstrapQualifier in %s", cdkJSON)
	}

	var qualifier string
	if err := json.Unmarshal(raw, &qualifier); err != nil {
		return "", errors.Newf("@aws-cdk/core:bootstrapQualifier must be a string in %s", cdkJSON)
	}
	return qualifier, nil
}
