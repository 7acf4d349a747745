package sink

import (
	"encoding/json"
	"io"
)

// Console writes one JSON object per line directly to an io.Writer,
// implementing the CLI's --console flag: "print JSON objects to stdout
// instead of writing to object storage" (spec.md §6).
type Console struct {
	enc *json.Encoder
}

// NewConsole returns a Console sink writing to w. w is typically os.Stdout
// and is never closed by Close.
func NewConsole(w io.Writer) *Console {
	return &Console{enc: json.NewEncoder(w)}
}

func (c *Console) Write(r Record) error { return c.enc.Encode(r) }
func (c *Console) Close() error         { return nil }

// ConsoleOpener is an Opener that always returns the same Console
// regardless of bucket name, since --console writes everything to one
// stream rather than per-bucket files.
type ConsoleOpener struct {
	console *Console
}

// NewConsoleOpener returns an Opener wrapping w as a single shared
// Console.
func NewConsoleOpener(w io.Writer) *ConsoleOpener {
	return &ConsoleOpener{console: NewConsole(w)}
}

func (o *ConsoleOpener) Open(name string) (Sink, error) { return o.console, nil }
