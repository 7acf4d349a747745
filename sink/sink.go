// Package sink projects decoded events into an output format, grounding
// the event shape spec.md §6 calls "the mapping consumed by sinks" and
// generalizing main.py's --console flag and gcs.py's _write_to_gcs
// jsonl/json writers into a small Sink interface with three
// implementations.
package sink

import (
	"github.com/frostlake/frzjournal/event"
)

// Record is the flattened projection of an event.Event a Sink writes,
// matching spec.md §6's field list exactly: host, source, sourcetype,
// index_time, message, stream_id, stream_offset.
type Record struct {
	Host         string `json:"host"`
	Source       string `json:"source"`
	SourceType   string `json:"sourcetype"`
	IndexTime    int64  `json:"index_time"`
	Message      string `json:"message"`
	StreamID     uint64 `json:"stream_id"`
	StreamOffset uint64 `json:"stream_offset"`
}

// NewRecord projects evt and the decoder's currently active
// host/source/sourcetype into a Record.
func NewRecord(host, source, sourceType string, evt *event.Event) Record {
	return Record{
		Host:         host,
		Source:       source,
		SourceType:   sourceType,
		IndexTime:    evt.IndexTime,
		Message:      evt.Text(),
		StreamID:     evt.StreamID,
		StreamOffset: evt.StreamOffset,
	}
}

// Sink consumes a stream of Records for one bucket's worth of events.
// Implementations write one bucket at a time; Close finalizes and
// releases any resources tied to that bucket (a file handle, an upload
// stream).
type Sink interface {
	Write(Record) error
	Close() error
}

// Opener creates a Sink for the named bucket, matching spec.md §6's
// "output file naming derived from the source bucket directory name plus
// the configured output prefix" rule. Name is the bucket directory's
// name; implementations are responsible for applying any prefix/suffix
// and file extension.
type Opener interface {
	Open(name string) (Sink, error)
}
