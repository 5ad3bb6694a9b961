// Package filewalk walks project trees, skipping tooling and dependency dirs.
package filewalk

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var defaultSkipDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	".svn":         {},
	".hg":          {},
	"vendor":       {},
	"cdk.out":      {},
	"dist":         {},
	"build":        {},
	".next":        {},
	"__pycache__":  {},
}

type WalkOptions struct {
	// SkipDirs replaces the default skip list when non-nil. Pass an empty map
	// to walk everything.
	SkipDirs   map[string]struct{}
	Extensions []string
}

func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		SkipDirs: defaultSkipDirs,
	}
}

func WalkFiles(root string, opts WalkOptions, callback func(path string, entry fs.DirEntry) error) error {
	skipDirs := opts.SkipDirs
	if skipDirs == nil {
		skipDirs = defaultSkipDirs
	}

	extSet := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extSet[ext] = struct{}{}
	}

	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[entry.Name()]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		if len(extSet) > 0 {
			ext := filepath.Ext(path)
			if _, ok := extSet[ext]; !ok {
				return nil
			}
		}

		return callback(path, entry)
	})
}

func FindByExtension(root string, extensions ...string) ([]string, error) {
	var files []string
	opts := DefaultWalkOptions()
	opts.Extensions = extensions

	err := WalkFiles(root, opts, func(path string, _ fs.DirEntry) error {
		files = append(files, path)
		return nil
	})

	return files, err
}

// FindTemplates returns the synthesized CloudFormation templates under a cdk.out dir.
func FindTemplates(cdkOut string) ([]string, error) {
	var files []string
	err := WalkFiles(cdkOut, WalkOptions{SkipDirs: map[string]struct{}{}}, func(path string, _ fs.DirEntry) error {
		if strings.HasSuffix(path, ".template.json") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
