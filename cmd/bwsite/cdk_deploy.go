package main

import (
	"context"
	"fmt"
	"os"

	"github.com/basewarphq/bwsite/cmd/internal/assets"
	"github.com/basewarphq/bwsite/cmd/internal/cfnread"
	"go.uber.org/zap"
)

type DeployCmd struct {
	Hotswap bool `help:"Enable CDK hotswap deployment for faster iterations."`
}

func (c *DeployCmd) Run(ctx context.Context, s *session) error {
	t, err := s.resolveTarget(ctx)
	if err != nil {
		return err
	}

	manifest, err := assets.Scan(t.AssetDir)
	if err != nil {
		return err
	}
	s.log.Info("uploading assets",
		zap.String("dir", manifest.Dir),
		zap.Int("files", len(manifest.Files)),
		zap.Int64("bytes", manifest.TotalSize()))

	args := []string{"deploy", t.StackName, "--require-approval", "never"}
	if c.Hotswap {
		args = append(args, "--hotswap")
	}
	if err := s.cdk(ctx, t, args...); err != nil {
		return err
	}

	url, err := cfnread.DeployURL(ctx, s.runner, t.Region, t.StackName)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, url)
	return nil
}
