// Package assets scans the local asset directory that gets uploaded to the
// site bucket.
package assets

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/basewarphq/bwsite/cmd/internal/filewalk"
	"github.com/cockroachdb/errors"
	"github.com/gabriel-vasile/mimetype"
)

// IndexDocument must exist at the root of every asset directory.
const IndexDocument = "index.html"

var ErrMissingIndex = errors.New("asset directory has no " + IndexDocument)

type File struct {
	Key         string `yaml:"key"`
	Size        int64  `yaml:"size"`
	ContentType string `yaml:"contentType"`
}

// Manifest lists the files of an asset directory, sorted by key.
type Manifest struct {
	Dir   string `yaml:"dir"`
	Files []File `yaml:"files"`
}

// TotalSize returns the sum of all file sizes.
func (m *Manifest) TotalSize() int64 {
	var n int64
	for _, f := range m.Files {
		n += f.Size
	}
	return n
}

// Keys returns the object keys in manifest order.
func (m *Manifest) Keys() []string {
	keys := make([]string, len(m.Files))
	for i, f := range m.Files {
		keys[i] = f.Key
	}
	return keys
}

// Scan walks dir and returns its manifest. Every file is included, even those
// in directories the project walker normally skips.
func Scan(dir string) (*Manifest, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", dir)
	}

	m := &Manifest{Dir: abs}
	opts := filewalk.WalkOptions{SkipDirs: map[string]struct{}{}}
	err = filewalk.WalkFiles(abs, opts, func(path string, entry fs.DirEntry) error {
		info, err := entry.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		mt, err := mimetype.DetectFile(path)
		if err != nil {
			return errors.Wrapf(err, "detecting content type of %s", rel)
		}
		m.Files = append(m.Files, File{
			Key:         filepath.ToSlash(rel),
			Size:        info.Size(),
			ContentType: mt.String(),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", abs)
	}

	sort.Slice(m.Files, func(i, j int) bool { return m.Files[i].Key < m.Files[j].Key })

	idx := sort.Search(len(m.Files), func(i int) bool { return m.Files[i].Key >= IndexDocument })
	if idx == len(m.Files) || m.Files[idx].Key != IndexDocument {
		return nil, errors.Mark(errors.Newf("%s has no %s", abs, IndexDocument), ErrMissingIndex)
	}

	return m, nil
}
