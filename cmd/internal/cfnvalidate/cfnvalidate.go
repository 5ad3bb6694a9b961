// Package cfnvalidate checks synthesized site templates before they are deployed.
package cfnvalidate

import (
	"os"
	"sort"
	"strings"

	"github.com/basewarphq/bwsite/bwsite"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// requiredResources lists how many resources of each type a site template
// carries at minimum.
var requiredResources = map[string]int{
	"AWS::S3::Bucket":                                 1,
	"AWS::CloudFront::Distribution":                   1,
	"AWS::CloudFront::CloudFrontOriginAccessIdentity": 1,
	"AWS::Route53::RecordSet":                         2,
	"Custom::CDKBucketDeployment":                     1,
}

const deployURLOutput = bwsite.DeployURLOutputKey

// SiteTemplate validates a synthesized site template. Templates may be JSON
// (as emitted by cdk synth) or YAML.
func SiteTemplate(templatePath string) error {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return errors.Wrapf(err, "reading template %s", templatePath)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "parsing template")
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return errors.New("invalid template document")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return errors.New("template root is not a mapping")
	}

	resources := findMappingValue(root, "Resources")
	if resources == nil {
		return errors.New("template has no Resources section")
	}

	counts := countTypes(resources)

	var problems []string
	for typ, want := range requiredResources {
		if got := counts[typ]; got < want {
			problems = append(problems, typ)
		}
	}
	sort.Strings(problems)
	if len(problems) > 0 {
		return errors.Newf("template is missing resources: %s", strings.Join(problems, ", "))
	}

	if findMappingValue(findMappingValue(root, "Outputs"), deployURLOutput) == nil {
		return errors.Newf("template has no %s output", deployURLOutput)
	}

	return nil
}

func countTypes(resources *yaml.Node) map[string]int {
	counts := map[string]int{}
	if resources.Kind != yaml.MappingNode {
		return counts
	}
	for i := 1; i < len(resources.Content); i += 2 {
		if typ := findMappingValue(resources.Content[i], "Type"); typ != nil {
			counts[typ.Value]++
		}
	}
	return counts
}

func findMappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
