// Package siteverify compares a local asset manifest with the objects in the
// deployed site bucket.
package siteverify

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/basewarphq/bwsite/cmd/internal/assets"
	"github.com/cockroachdb/errors"
)

type Report struct {
	Bucket string `yaml:"bucket"`
	// Missing are local files not present in the bucket.
	Missing []string `yaml:"missing,omitempty"`
	// SizeMismatch are keys present in both with different sizes.
	SizeMismatch []string `yaml:"sizeMismatch,omitempty"`
	// Extra are bucket objects with no local file. Informational: the
	// deployment prunes them on the next deploy.
	Extra []string `yaml:"extra,omitempty"`
}

// OK reports whether every local file is deployed unchanged.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.SizeMismatch) == 0
}

// Verify lists the bucket and compares it with the manifest.
func Verify(ctx context.Context, api s3.ListObjectsV2APIClient, bucket string, m *assets.Manifest) (*Report, error) {
	remote := map[string]int64{}

	p := s3.NewListObjectsV2Paginator(api, &s3.ListObjectsV2Input{Bucket: aws.String(bucket)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "listing bucket %s", bucket)
		}
		for _, obj := range page.Contents {
			remote[aws.ToString(obj.Key)] = aws.ToInt64(obj.Size)
		}
	}

	rep := &Report{Bucket: bucket}
	for _, f := range m.Files {
		size, ok := remote[f.Key]
		switch {
		case !ok:
			rep.Missing = append(rep.Missing, f.Key)
		case size != f.Size:
			rep.SizeMismatch = append(rep.SizeMismatch, f.Key)
		}
		delete(remote, f.Key)
	}
	for key := range remote {
		rep.Extra = append(rep.Extra, key)
	}
	sort.Strings(rep.Extra)

	return rep, nil
}
