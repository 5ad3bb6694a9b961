package main

import (
	"context"
	"fmt"
	"os"

	"github.com/basewarphq/bwsite/cmd/internal/cfnread"
)

type URLCmd struct{}

func (c *URLCmd) Run(ctx context.Context, s *session) error {
	t, err := s.resolveTarget(ctx)
	if err != nil {
		return err
	}

	url, err := cfnread.DeployURL(ctx, s.runner, t.Region, t.StackName)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, url)
	return nil
}
