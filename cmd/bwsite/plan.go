package main

import (
	"context"
	"io"
	"os"

	"github.com/basewarphq/bwsite/bwsite"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

type PlanCmd struct{}

func (c *PlanCmd) Run(ctx context.Context, s *session) error {
	t, err := s.resolveTarget(ctx)
	if err != nil {
		return err
	}

	topo, err := bwsite.Plan(t.siteConfig())
	if err != nil {
		return err
	}
	return writeYAML(os.Stdout, topo)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding YAML")
	}
	return enc.Close()
}
