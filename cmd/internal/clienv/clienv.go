// Package clienv reads the CLI's environment variables.
package clienv

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment holds settings that may also come from flags. Flags win.
type Environment struct {
	LogLevel     zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"LOG_FORMAT" envDefault:"console"`
	OtelExporter string        `env:"OTEL_EXPORTER" envDefault:"none"`
	ServiceName  string        `env:"SERVICE_NAME" envDefault:"bwsite"`
	AWSProfile   string        `env:"AWS_PROFILE"`
	// Region and account the cdk toolchain resolved for the current credentials.
	Region  string `env:"CDK_DEFAULT_REGION"`
	Account string `env:"CDK_DEFAULT_ACCOUNT"`
}

// Parse reads the environment.
func Parse() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return e, errors.Wrap(err, "failed to parse environment")
	}
	return e, nil
}
