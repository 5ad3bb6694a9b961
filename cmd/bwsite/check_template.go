package main

import (
	"context"
	"path/filepath"

	"github.com/basewarphq/bwsite/cmd/internal/cfnvalidate"
	"github.com/basewarphq/bwsite/cmd/internal/filewalk"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type TemplateCmd struct {
	NoSynth bool `name:"no-synth" help:"Validate the existing cdk.out without synthesizing."`
}

func (c *TemplateCmd) Run(ctx context.Context, s *session) error {
	t, err := s.resolveTarget(ctx)
	if err != nil {
		return err
	}

	if !c.NoSynth {
		if err := s.cdk(ctx, t, "synth", "--quiet", t.StackName); err != nil {
			return err
		}
	}

	cdkOut := filepath.Join(s.cfg.CdkDir(), "cdk.out")
	templates, err := filewalk.FindTemplates(cdkOut)
	if err != nil {
		return errors.Wrapf(err, "finding templates in %s", cdkOut)
	}

	want := t.StackName + ".template.json"
	for _, path := range templates {
		if filepath.Base(path) != want {
			continue
		}
		if err := cfnvalidate.SiteTemplate(path); err != nil {
			return errors.Wrapf(err, "validating %s", want)
		}
		s.log.Info("template ok", zap.String("path", path))
		return nil
	}
	return errors.Newf("no %s in %s", want, cdkOut)
}
