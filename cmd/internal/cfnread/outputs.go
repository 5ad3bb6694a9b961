// Package cfnread reads deployed stack state through the aws CLI.
package cfnread

import (
	"context"
	"encoding/json"

	"github.com/basewarphq/bwsite/bwsite"
	"github.com/basewarphq/bwsite/cmd/internal/cmdexec"
	"github.com/cockroachdb/errors"
)

// DeployURLOutput is the stack output holding the site's public URL.
const DeployURLOutput = bwsite.DeployURLOutputKey

type describeStacksResponse struct {
	Stacks []struct {
		Outputs []struct {
			OutputKey   string `json:"OutputKey"`
			OutputValue string `json:"OutputValue"`
		} `json:"Outputs"`
	} `json:"Stacks"`
}

func StackOutputs(ctx context.Context, r *cmdexec.Runner, region, stackName string) (map[string]string, error) {
	out, err := r.Output(ctx, "/", "aws", "cloudformation", "describe-stacks",
		"--no-cli-pager",
		"--region", region,
		"--stack-name", stackName,
		"--output", "json",
	)
	if err != nil {
		return nil, errors.Wrapf(err, "describing stack %s in %s", stackName, region)
	}

	return ParseOutputs(stackName, []byte(out))
}

// ParseOutputs decodes a describe-stacks response into output key/value pairs.
func ParseOutputs(stackName string, data []byte) (map[string]string, error) {
	var resp describeStacksResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrapf(err, "parsing stack outputs for %s", stackName)
	}

	if len(resp.Stacks) == 0 {
		return nil, errors.Newf("stack %s not found", stackName)
	}

	outputs := make(map[string]string, len(resp.Stacks[0].Outputs))
	for _, o := range resp.Stacks[0].Outputs {
		outputs[o.OutputKey] = o.OutputValue
	}
	return outputs, nil
}

// DeployURL returns the DeployUrl output of a deployed site stack.
func DeployURL(ctx context.Context, r *cmdexec.Runner, region, stackName string) (string, error) {
	outputs, err := StackOutputs(ctx, r, region, stackName)
	if err != nil {
		return "", err
	}
	url, ok := outputs[DeployURLOutput]
	if !ok {
		return "", errors.Newf("stack %s has no %s output", stackName, DeployURLOutput)
	}
	return url, nil
}
