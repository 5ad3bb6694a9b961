package main

import (
	"context"
)

type UnitTestCmd struct{}

func (c *UnitTestCmd) Run(ctx context.Context, s *session) error {
	return s.runner.Run(ctx, s.cfg.Root, "go", "test", "./...")
}
