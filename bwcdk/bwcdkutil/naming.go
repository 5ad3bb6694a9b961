package bwcdkutil

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/iancoleman/strcase"
)

// Casing specifies how to format the identifier string.
type Casing int

const (
	// CasingCamel formats as CamelCase (e.g., "BwsiteDeployUrl").
	CasingCamel Casing = iota
	// CasingLowerCamel formats as lowerCamelCase (e.g., "bwsiteDeployUrl").
	CasingLowerCamel
	// CasingSnake formats as snake_case (e.g., "bwsite_deploy_url").
	CasingSnake
	// CasingKebab formats as kebab-case (e.g., "bwsite-deploy-url").
	CasingKebab
)

// ResourceName generates a resource identifier prefixed with the stack's qualifier.
// The label is a free-form string that the caller provides.
//
// The format is "{qualifier}-{label}" converted to the specified casing.
//
// Examples with qualifier "bwsite", label "DeployUrl":
//   - CasingCamel:      "BwsiteDeployUrl"
//   - CasingLowerCamel: "bwsiteDeployUrl"
//   - CasingSnake:      "bwsite_deploy_url"
//   - CasingKebab:      "bwsite-deploy-url"
func ResourceName(scope constructs.Construct, label string, casing Casing) string {
	return applyCasing(fmt.Sprintf("%s-%s", Qualifier(scope), label), casing)
}

func applyCasing(s string, casing Casing) string {
	switch casing {
	case CasingCamel:
		return strcase.ToCamel(s)
	case CasingLowerCamel:
		return strcase.ToLowerCamel(s)
	case CasingSnake:
		return strcase.ToSnake(s)
	case CasingKebab:
		return strcase.ToKebab(s)
	default:
		return strcase.ToCamel(s)
	}
}
