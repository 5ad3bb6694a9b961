package main

import (
	"context"
)

type BootstrapCmd struct{}

func (c *BootstrapCmd) Run(ctx context.Context, s *session) error {
	t, err := s.resolveTarget(ctx)
	if err != nil {
		return err
	}
	return s.cdk(ctx, t, "bootstrap", "aws://"+t.Account+"/"+t.Region)
}
