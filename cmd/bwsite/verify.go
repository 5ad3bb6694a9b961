package main

import (
	"context"
	"os"

	"github.com/basewarphq/bwsite/bwsite"
	"github.com/basewarphq/bwsite/cmd/internal/assets"
	"github.com/basewarphq/bwsite/cmd/internal/awsclient"
	"github.com/basewarphq/bwsite/cmd/internal/siteverify"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type VerifyCmd struct {
	Strict bool `help:"Also fail when the bucket holds objects with no local file."`
}

func (c *VerifyCmd) Run(ctx context.Context, s *session) error {
	t, err := s.resolveTarget(ctx)
	if err != nil {
		return err
	}

	topo, err := bwsite.Plan(t.siteConfig())
	if err != nil {
		return err
	}

	manifest, err := assets.Scan(t.AssetDir)
	if err != nil {
		return err
	}

	cfg, err := s.awsConfig(ctx, t.Region)
	if err != nil {
		return err
	}

	rep, err := siteverify.Verify(ctx, awsclient.NewS3(cfg), topo.Bucket.Name, manifest)
	if err != nil {
		return err
	}

	s.log.Info("verified bucket",
		zap.String("bucket", rep.Bucket),
		zap.Int("local", len(manifest.Files)),
		zap.Int("missing", len(rep.Missing)),
		zap.Int("sizeMismatch", len(rep.SizeMismatch)),
		zap.Int("extra", len(rep.Extra)))

	if rep.OK() && (!c.Strict || len(rep.Extra) == 0) {
		return nil
	}
	if err := writeYAML(os.Stdout, rep); err != nil {
		return err
	}
	return errors.Newf("bucket %s is out of sync with %s", rep.Bucket, manifest.Dir)
}
