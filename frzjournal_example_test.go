package frzjournal_test

import (
	"bytes"
	"fmt"

	"github.com/frostlake/frzjournal"
	"github.com/frostlake/frzjournal/event"
	"github.com/frostlake/frzjournal/journal"
)

// buildExampleJournal hand-assembles header + NewHost + activate-host +
// one legacy event bytes, the same shape journal/decoder_test.go uses for
// its S2 scenario, so this example needs no on-disk fixture.
func buildExampleJournal() []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x0A, 1, 0, 0, 0, 0, 0}) // Header: version=1, align_bits=0, base_index_time=0
	buf.Write([]byte{0x03, 2, 'h', '1'})      // NewHost "h1"
	buf.Write([]byte{0x18, 1})                // state-change: active_host=1
	buf.Write([]byte{
		0x01,                   // OldstyleEvent, no hash
		24,                     // message_length_raw: 13 header bytes + 11 message bytes
		0, 0, 0, 0, 0, 0, 0, 0, // stream_id = 0
		0, // stream_offset = 0
		0, // stream_sub_offset = 0
		0, // index_time_delta = 0
		0, // sub_seconds = 0
		0, // metadata_count = 0
	})
	buf.WriteString(`hello world`)
	return buf.Bytes()
}

func Example() {
	d := journal.NewDecoder(bytes.NewReader(buildExampleJournal()))

	var evt event.Event
	for {
		if err := d.Next(&evt); err != nil {
			break
		}
		fmt.Printf("%s: %s\n", d.Host(), evt.Text())
	}
	if err := d.Err(); err != nil {
		fmt.Println(`Err:`, err)
		return
	}

	// Output:
	// h1: hello world
}

func Example_decode() {
	dir := `testdata/bucket`
	err := frzjournal.Decode(dir, func(host, source, sourceType string, evt *event.Event) error {
		fmt.Println(host, source, sourceType, evt.Text())
		return nil
	})
	if err != nil {
		fmt.Println(`Err:`, err)
	}

	// Output:
	// Err: journal: rawdata/journal[.zst] not found
}
