package bwcdkutil

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// DomainNameContextKey is the context key holding the site's apex domain,
// e.g. `cdk deploy --context domainName=example.com`.
const DomainNameContextKey = "domainName"

// DefaultAssetDir is used when neither context nor AppConfig name an asset directory.
const DefaultAssetDir = "dist"

// Scope-based convenience functions that retrieve Config from the construct tree.

// DomainName returns the site's apex domain name.
func DomainName(scope constructs.Construct) string {
	return ConfigFromScope(scope).DomainName
}

// Qualifier returns the CDK qualifier.
func Qualifier(scope constructs.Construct) string {
	return ConfigFromScope(scope).Qualifier
}

// StackEnv holds the deployment environment the cdk CLI exports to the app.
type StackEnv struct {
	Account string `env:"CDK_DEFAULT_ACCOUNT"`
	Region  string `env:"CDK_DEFAULT_REGION"`
}

// ParseStackEnv reads StackEnv from the process environment.
func ParseStackEnv() (StackEnv, error) {
	var se StackEnv
	if err := env.Parse(&se); err != nil {
		return se, errors.Wrap(err, "parsing stack environment")
	}
	return se, nil
}

// Config holds all CDK context values validated upfront.
// It centralizes context reading and validation to provide clear error messages.
type Config struct {
	Prefix     string `validate:"required"`
	Qualifier  string `validate:"required,max=10"`
	DomainName string `validate:"required,fqdn"`
	Region     string `validate:"required"`
	Account    string `validate:"required,numeric,len=12"`
	AssetDir   string `validate:"required,dir"`
}

// NewConfig reads and validates all CDK context values. Region and account fall
// back to the stack environment when the context does not pin them.
// Returns an error if any required value is missing or invalid.
func NewConfig(scope constructs.Construct, acfg AppConfig, senv StackEnv) (*Config, error) {
	var readErrs []string

	cfg := &Config{
		Prefix: acfg.Prefix,
	}

	cfg.DomainName, readErrs = readContextString(scope, DomainNameContextKey, readErrs)
	cfg.DomainName = strings.TrimSuffix(strings.ToLower(cfg.DomainName), ".")
	cfg.Qualifier, readErrs = readContextString(scope, acfg.Prefix+"qualifier", readErrs)
	cfg.Region = readOptionalContextString(scope, acfg.Prefix+"region", senv.Region)
	cfg.Account = readOptionalContextString(scope, acfg.Prefix+"account", senv.Account)
	cfg.AssetDir = readOptionalContextString(scope, acfg.Prefix+"asset-dir", acfg.AssetDir)
	if cfg.AssetDir == "" {
		cfg.AssetDir = DefaultAssetDir
	}

	if cfg.Region != "" && !IsKnownRegion(cfg.Region) {
		readErrs = append(readErrs, fmt.Sprintf(
			"unknown region %q - add it to bwcdkutil.RegionIdents", cfg.Region))
	}

	if len(readErrs) > 0 {
		return nil, errors.Errorf("CDK context read errors:\n  - %s", strings.Join(readErrs, "\n  - "))
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			msgs := make([]string, 0, len(validationErrs))
			for _, e := range validationErrs {
				msgs = append(msgs, formatValidationError(e, acfg.Prefix))
			}
			return nil, errors.Errorf("CDK context validation errors:\n  - %s", strings.Join(msgs, "\n  - "))
		}
		return nil, errors.Errorf("CDK context validation failed: %w", err)
	}

	return cfg, nil
}

// RegionIdent returns the acronym identifier for the stack region.
func (c *Config) RegionIdent() string {
	return RegionIdentFor(c.Region)
}

// configContextKey is the well-known key used to store validated Config in the construct tree.
const configContextKey = "__bwcdkutil_config"

// StoreConfig stores a validated Config in the app's context so it can be retrieved
// anywhere in the construct tree via ConfigFromScope.
func StoreConfig(app awscdk.App, cfg *Config) {
	app.Node().SetContext(jsii.String(configContextKey), cfg)
}

// ConfigFromScope retrieves the validated Config from the construct tree.
// It panics if Config was not stored (i.e., SetupApp was not called).
func ConfigFromScope(scope constructs.Construct) *Config {
	val := scope.Node().TryGetContext(jsii.String(configContextKey))
	if val == nil {
		panic("bwcdkutil.Config not found in construct tree - was SetupApp or StoreConfig called?")
	}
	cfg, ok := val.(*Config)
	if !ok {
		panic(fmt.Sprintf("bwcdkutil.Config has unexpected type %T", val))
	}
	return cfg
}

func formatValidationError(e validator.FieldError, prefix string) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required (context %q)", e.Field(), contextKeyFor(e.Field(), prefix))
	case "max":
		return fmt.Sprintf("%s exceeds maximum length of %s (got %q)", e.Field(), e.Param(), e.Value())
	case "fqdn":
		return fmt.Sprintf("%s must be a valid domain name (got %q)", e.Field(), e.Value())
	case "numeric", "len":
		return fmt.Sprintf("%s must be a 12-digit AWS account ID (got %q)", e.Field(), e.Value())
	case "dir":
		return fmt.Sprintf("%s must be an existing directory (got %q)", e.Field(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation %q", e.Field(), e.Tag())
	}
}

func contextKeyFor(field, prefix string) string {
	switch field {
	case "DomainName":
		return DomainNameContextKey
	case "Region":
		return prefix + "region or CDK_DEFAULT_REGION"
	case "Account":
		return prefix + "account or CDK_DEFAULT_ACCOUNT"
	case "AssetDir":
		return prefix + "asset-dir"
	default:
		return prefix + strings.ToLower(field)
	}
}

func readContextString(scope constructs.Construct, key string, errs []string) (string, []string) {
	val := scope.Node().TryGetContext(jsii.String(key))
	if val == nil {
		return "", append(errs, fmt.Sprintf("context key %q is not set", key))
	}
	s, ok := val.(string)
	if !ok {
		return "", append(errs, fmt.Sprintf("context key %q must be a string, got %T", key, val))
	}
	return strings.TrimSpace(s), errs
}

func readOptionalContextString(scope constructs.Construct, key, fallback string) string {
	val := scope.Node().TryGetContext(jsii.String(key))
	if val == nil {
		return fallback
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}
