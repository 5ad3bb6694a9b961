package main

import (
	"context"
)

type DestroyCmd struct{}

// Run tears the stack down. The bucket is emptied and deleted with it.
func (c *DestroyCmd) Run(ctx context.Context, s *session) error {
	t, err := s.resolveTarget(ctx)
	if err != nil {
		return err
	}
	return s.cdk(ctx, t, "destroy", t.StackName, "--force")
}
