package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/basewarphq/bwsite/cmd/internal/assets"
	"github.com/basewarphq/bwsite/cmd/internal/bincheck"
	"github.com/cockroachdb/errors"
)

// requiredTools are the binaries the cdk commands shell out to.
var requiredTools = []string{"cdk", "aws", "go", "node"}

type PreflightCmd struct{}

func (c *PreflightCmd) Run(_ context.Context, s *session) error {
	rows, failed := preflightChecks(s, bincheck.NewChecker())
	if err := writeTable(os.Stdout, []string{"CHECK", "STATUS", "DETAIL"}, rows); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Newf("%d preflight check(s) failed", failed)
	}
	return nil
}

func preflightChecks(s *session, bins *bincheck.Checker) (rows [][]string, failed int) {
	add := func(name string, err error, detail string) {
		status := "ok"
		if err != nil {
			status, detail = "FAIL", err.Error()
			failed++
		}
		rows = append(rows, []string{name, status, detail})
	}

	var toolsErr error
	if missing := bins.Missing(requiredTools...); len(missing) > 0 {
		toolsErr = errors.Newf("not in PATH: %s", strings.Join(missing, ", "))
	}
	add("tools", toolsErr, strings.Join(requiredTools, ", "))

	var domainErr error
	if s.domain() == "" {
		domainErr = errors.New("no domain: set site.domain or pass --domain")
	}
	add("domain", domainErr, s.domain())

	cctx, err := s.cdkContext()
	detail := ""
	if err == nil {
		detail = "qualifier " + cctx.Qualifier
	}
	add("cdk.json", err, detail)

	manifest, err := assets.Scan(s.cfg.DistDir())
	detail = ""
	if err == nil {
		detail = strconv.Itoa(len(manifest.Files)) + " files in " + manifest.Dir
	}
	add("assets", err, detail)

	return rows, failed
}
