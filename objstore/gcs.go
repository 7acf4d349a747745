package objstore

import (
	"context"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/frostlake/frzjournal/internal/bucket"
)

// GCS is a Store backed by a Google Cloud Storage bucket, the direct
// equivalent of gcs.py's GCSJournalReader. Unlike the reference
// implementation, Open streams the object's own reader straight into the
// caller rather than downloading to a temp file first — the reference's
// "TODO: Modify JournalDecoder to accept file-like objects" is moot here
// since journal.OpenReader already accepts an io.ReadCloser.
type GCS struct {
	client     *storage.Client
	bucketName string
	prefix     string
	project    string
}

// NewGCS returns a Store over the given bucket and optional object-name
// prefix. project, if non-empty, is billed for requests as the bucket's
// requester-pays project, matching the CLI's --project flag.
func NewGCS(ctx context.Context, project, bucketName, prefix string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	client.SetRetry(storage.WithPolicy(storage.RetryAlways))
	return &GCS{client: client, bucketName: bucketName, prefix: prefix, project: project}, nil
}

func (g *GCS) bucketHandle() *storage.BucketHandle {
	h := g.client.Bucket(g.bucketName)
	if g.project != `` {
		h = h.UserProject(g.project)
	}
	return h
}

// List enumerates objects under prefix and returns one Object for each
// "rawdata/journal" or "rawdata/journal.zst" object, named after the bucket
// directory it belongs to. Objects are not grouped: a bucket directory
// holding both files yields two Objects.
//
//   original_source/gcs.py: list_buckets_in_gcs
func (g *GCS) List(ctx context.Context) ([]Object, error) {
	it := g.bucketHandle().Objects(ctx, &storage.Query{Prefix: g.prefix})

	var objs []Object
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		base := path.Base(attrs.Name)
		if base != bucket.JournalName && base != bucket.CompressedJournalName {
			continue
		}
		rawdataDir := path.Dir(attrs.Name)
		if path.Base(rawdataDir) != bucket.RawdataDirName {
			continue
		}
		bucketDir := path.Dir(rawdataDir)

		objs = append(objs, Object{
			Name:       path.Base(bucketDir),
			key:        attrs.Name,
			Compressed: base == bucket.CompressedJournalName,
		})
	}
	return objs, nil
}

// Open streams obj's bytes directly from GCS.
//
//   original_source/gcs.py: open_journal_from_gcs
func (g *GCS) Open(ctx context.Context, obj Object) (io.ReadCloser, error) {
	return g.bucketHandle().Object(obj.key).NewReader(ctx)
}
