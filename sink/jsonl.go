package sink

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// JSONL writes one JSON object per line to a single underlying
// io.WriteCloser, the default output format per spec.md §6.
type JSONL struct {
	w   io.WriteCloser
	enc *json.Encoder
}

func newJSONL(w io.WriteCloser) *JSONL {
	return &JSONL{w: w, enc: json.NewEncoder(w)}
}

func (j *JSONL) Write(r Record) error { return j.enc.Encode(r) }
func (j *JSONL) Close() error         { return j.w.Close() }

// LocalJSONLOpener opens one ".jsonl" file per bucket beneath a directory,
// named "<prefix><bucket-name>.jsonl", matching spec.md §6's output naming
// rule for the non-GCS, non-console case.
type LocalJSONLOpener struct {
	dir    string
	prefix string
}

// NewLocalJSONLOpener returns an Opener that writes each bucket's events
// to dir/prefix+name+".jsonl", creating dir if needed.
func NewLocalJSONLOpener(dir, prefix string) *LocalJSONLOpener {
	return &LocalJSONLOpener{dir: dir, prefix: prefix}
}

func (o *LocalJSONLOpener) Open(name string) (Sink, error) {
	path := filepath.Join(o.dir, o.prefix+name+`.jsonl`)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return newJSONL(f), nil
}
