package main

import (
	"context"

	"github.com/basewarphq/bwsite/cmd/internal/filewalk"
)

type FmtCmd struct{}

func (c *FmtCmd) Run(ctx context.Context, s *session) error {
	if err := s.runner.Run(ctx, s.cfg.Root, "golangci-lint", "fmt", "./..."); err != nil {
		return err
	}

	scripts, err := filewalk.FindByExtension(s.cfg.Root, ".sh")
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		return nil
	}

	args := append([]string{"-w"}, scripts...)
	return s.runner.Run(ctx, s.cfg.Root, "shfmt", args...)
}
