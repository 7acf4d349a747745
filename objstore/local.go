package objstore

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/frostlake/frzjournal/internal/bucket"
)

// Local is a Store backed by a directory tree on the local filesystem,
// used for every test and for CLI sources that aren't "gs://...".
type Local struct {
	root string
}

// NewLocal returns a Store rooted at root, a directory expected to
// contain one or more bucket directories (possibly nested).
func NewLocal(root string) *Local {
	return &Local{root: root}
}

func (l *Local) List(ctx context.Context) ([]Object, error) {
	dirs, err := bucket.Discover(os.DirFS(l.root))
	if err != nil {
		return nil, err
	}
	objs := make([]Object, len(dirs))
	for i, d := range dirs {
		objs[i] = Object{
			Name:       d.Name,
			key:        filepath.Join(l.root, filepath.FromSlash(d.JournalPath)),
			Compressed: d.Compressed,
		}
	}
	return objs, nil
}

func (l *Local) Open(ctx context.Context, obj Object) (io.ReadCloser, error) {
	return os.Open(obj.key)
}
