package bwsite

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig marks every error returned for an unusable Config.
var ErrInvalidConfig = errors.New("invalid site config")

// DefaultAssetDir is the directory whose contents are uploaded to the origin bucket.
const DefaultAssetDir = "dist"

// Config is the site configuration. DomainName is the only value the operator
// chooses per site; Region and Account come from the deployment environment.
type Config struct {
	// DomainName is the apex domain, e.g. "example.com".
	DomainName string `validate:"required,fqdn"`
	// Region is the AWS region the stack deploys into.
	Region string `validate:"required"`
	// Account is the 12-digit AWS account ID the stack deploys into.
	Account string `validate:"required,numeric,len=12"`
	// AssetDir is the local directory uploaded to the bucket. Defaults to DefaultAssetDir.
	AssetDir string
	// Comment is attached to the origin access identity. Defaults to the domain name.
	Comment string
}

// Validate checks the config and returns an error marked with ErrInvalidConfig
// that lists every failing field.
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Mark(errors.Wrap(err, "site config validation failed"), ErrInvalidConfig)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, formatValidationError(e))
	}
	return errors.Mark(
		errors.Newf("site config validation errors:\n  - %s", strings.Join(msgs, "\n  - ")),
		ErrInvalidConfig)
}

func (c Config) normalized() Config {
	c.DomainName = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(c.DomainName), "."))
	if c.AssetDir == "" {
		c.AssetDir = DefaultAssetDir
	}
	if c.Comment == "" {
		c.Comment = c.DomainName
	}
	return c
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "fqdn":
		return fmt.Sprintf("%s must be a valid domain name (got %q)", e.Field(), e.Value())
	case "numeric", "len":
		return fmt.Sprintf("%s must be a 12-digit account ID (got %q)", e.Field(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation %q", e.Field(), e.Tag())
	}
}
