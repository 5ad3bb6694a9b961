// Package projcfg loads the bwsite.toml project file.
package projcfg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

const configFile = "bwsite.toml"

type Config struct {
	Root string     `toml:"-"`
	Site SiteConfig `toml:"site"`
	Cdk  CdkConfig  `toml:"cdk"`
}

type SiteConfig struct {
	Domain string `toml:"domain"`
	Dist   string `toml:"dist"`
}

type CdkConfig struct {
	Dir string `toml:"dir"`
}

func (c *Config) CdkDir() string {
	return filepath.Join(c.Root, c.Cdk.Dir)
}

// DistDir returns the absolute asset directory.
func (c *Config) DistDir() string {
	return filepath.Join(c.Root, c.Site.Dist)
}

// Load finds bwsite.toml in the working directory or one of its parents.
func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := findRoot(wd)
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(root, configFile))
}

// LoadFile parses and validates a project file. Its directory becomes the root.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", configFile)
	}

	cfg.Root = filepath.Dir(path)
	cfg.Site.Domain = strings.TrimSpace(cfg.Site.Domain)
	if cfg.Site.Dist == "" {
		cfg.Site.Dist = "dist"
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", configFile)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Site.Domain == "" {
		return errors.New("site.domain is required")
	}
	if c.Cdk.Dir == "" {
		return errors.New("cdk.dir is required")
	}
	if filepath.IsAbs(c.Cdk.Dir) {
		return errors.Newf("cdk.dir must be relative, got %q", c.Cdk.Dir)
	}
	if filepath.IsAbs(c.Site.Dist) {
		return errors.Newf("site.dist must be relative, got %q", c.Site.Dist)
	}
	return nil
}

func findRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, configFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf("could not find %s in any parent directory", configFile)
		}
		dir = parent
	}
}
