package sink

import (
	"context"

	"cloud.google.com/go/storage"
)

// GCSJSONLOpener writes each bucket's events as line-delimited JSON to a
// GCS object named "<prefix><bucket-name>.jsonl", the direct equivalent
// of gcs.py's _write_to_gcs.
type GCSJSONLOpener struct {
	ctx    context.Context
	bucket *storage.BucketHandle
	prefix string
}

// NewGCSJSONLOpener returns an Opener writing into bucketName via client,
// one object per bucket directory.
func NewGCSJSONLOpener(ctx context.Context, client *storage.Client, bucketName, prefix string) *GCSJSONLOpener {
	return &GCSJSONLOpener{ctx: ctx, bucket: client.Bucket(bucketName), prefix: prefix}
}

func (o *GCSJSONLOpener) Open(name string) (Sink, error) {
	w := o.bucket.Object(o.prefix + name + `.jsonl`).NewWriter(o.ctx)
	return newJSONL(w), nil
}
