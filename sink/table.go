package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// tableColumns fixes the Table sink's column order, matching Record's
// field order.
var tableColumns = []string{`host`, `source`, `sourcetype`, `index_time`, `message`, `stream_id`, `stream_offset`}

// Table writes Records as rows of a delimited file via encoding/csv. The
// reference implementation's main.py only mentions a --bq-table flag in
// its docstring without a corresponding BigQuery client anywhere in the
// provided source, so this decoder implements the "analytical table
// streamer" spec.md §1 calls for with an ecosystem-idiomatic, inspectable
// CSV writer instead of fabricating a dependency no sample imports; see
// DESIGN.md.
type Table struct {
	f *os.File
	w *csv.Writer
}

func newTable(f *os.File) (*Table, error) {
	w := csv.NewWriter(f)
	if err := w.Write(tableColumns); err != nil {
		return nil, err
	}
	return &Table{f: f, w: w}, nil
}

func (t *Table) Write(r Record) error {
	err := t.w.Write([]string{
		r.Host,
		r.Source,
		r.SourceType,
		strconv.FormatInt(r.IndexTime, 10),
		r.Message,
		strconv.FormatUint(r.StreamID, 10),
		strconv.FormatUint(r.StreamOffset, 10),
	})
	if err != nil {
		return err
	}
	t.w.Flush()
	return t.w.Error()
}

func (t *Table) Close() error {
	t.w.Flush()
	if err := t.w.Error(); err != nil {
		t.f.Close()
		return err
	}
	return t.f.Close()
}

// LocalTableOpener opens one ".csv" file per bucket beneath a directory,
// the Table-sink analogue of LocalJSONLOpener.
type LocalTableOpener struct {
	dir    string
	prefix string
}

// NewLocalTableOpener returns an Opener that writes each bucket's events
// to dir/prefix+name+".csv", creating dir if needed.
func NewLocalTableOpener(dir, prefix string) *LocalTableOpener {
	return &LocalTableOpener{dir: dir, prefix: prefix}
}

func (o *LocalTableOpener) Open(name string) (Sink, error) {
	path := filepath.Join(o.dir, o.prefix+name+`.csv`)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return newTable(f)
}
