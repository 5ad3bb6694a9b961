package main

import (
	"context"
)

type DiffCmd struct{}

func (c *DiffCmd) Run(ctx context.Context, s *session) error {
	t, err := s.resolveTarget(ctx)
	if err != nil {
		return err
	}
	return s.cdk(ctx, t, "diff", t.StackName)
}
