// Package frzjournal provides top-level convenience wrappers over the
// journal package, the way the teacher package's own root trace.go sits
// above encoding as a thin convenience layer over runtime/trace.
package frzjournal

import (
	"github.com/frostlake/frzjournal/event"
	"github.com/frostlake/frzjournal/journal"
)

// Visit is called once per decoded event by Decode.
type Visit func(host, source, sourceType string, evt *event.Event) error

// Decode opens the bucket directory at dir and calls visit once for every
// event it contains, stopping at the first error returned by either the
// decoder or visit. It always closes the decoder before returning.
func Decode(dir string, visit Visit) error {
	d, err := journal.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()

	var evt event.Event
	for {
		if err := d.Next(&evt); err != nil {
			break
		}
		if err := visit(d.Host(), d.Source(), d.SourceType(), &evt); err != nil {
			return err
		}
	}
	return d.Err()
}
