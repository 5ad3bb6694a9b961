package main

import (
	"context"
)

type SynthCmd struct{}

func (c *SynthCmd) Run(ctx context.Context, s *session) error {
	t, err := s.resolveTarget(ctx)
	if err != nil {
		return err
	}
	return s.cdk(ctx, t, "synth", "--quiet", t.StackName)
}
