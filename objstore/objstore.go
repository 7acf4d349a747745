// Package objstore abstracts the journal decoder's byte source away from
// any particular storage backend, generalizing gcs.py's
// GCSJournalReader.list_journal_files / open_journal_from_gcs into a
// small Store interface with a local-filesystem and a Google Cloud
// Storage implementation.
package objstore

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Object identifies one discovered bucket's journal within a Store.
type Object struct {
	// Name is the bucket directory's name, used by sinks for output
	// naming (see spec.md §6's "output file naming" rule).
	Name string

	// key is the store-specific identifier Store.Open needs to retrieve
	// the journal bytes: a filesystem path for Local, an object name for
	// GCS. Callers should treat it as opaque.
	key string

	// Compressed reports whether the object is zstd-compressed, mirroring
	// journal.Open's own journal.zst-over-journal preference.
	Compressed bool
}

// Store lists and opens journal objects from one source.
type Store interface {
	// List returns every bucket's journal object found under the store's
	// configured root or prefix. Local orders them by bucket directory
	// path; GCS returns them in the order the bucket listing yields them.
	// Neither sorts by Name.
	List(ctx context.Context) ([]Object, error)

	// Open returns a byte stream for obj's journal file. The caller must
	// Close it; journal.OpenReader takes ownership if passed directly.
	Open(ctx context.Context, obj Object) (io.ReadCloser, error)
}

// New dispatches on source's scheme, mirroring main.py's "source" CLI
// positional: a "gs://bucket[/prefix]" source yields a GCS-backed Store,
// anything else is used unchanged as a local filesystem directory path.
func New(ctx context.Context, source string, project string) (Store, error) {
	if strings.HasPrefix(source, `gs://`) {
		rest := strings.TrimPrefix(source, `gs://`)
		bucketName, prefix, _ := strings.Cut(rest, `/`)
		if bucketName == `` {
			return nil, fmt.Errorf(`objstore: %q: missing bucket name`, source)
		}
		return NewGCS(ctx, project, bucketName, prefix)
	}
	return NewLocal(source), nil
}
