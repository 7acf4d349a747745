// Command frzcat is a small utility for decoding one or more local bucket
// directories and printing their events, mirroring the teacher package's
// own cmd/tracecat: a quick manual sanity tool, not a production CLI (see
// cmd/frzexport for the full surface).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/frostlake/frzjournal/event"
	"github.com/frostlake/frzjournal/journal"
)

const flagHelpUsage = `display usage information and exit`

var flagHelp bool

func init() {
	flag.BoolVar(&flagHelp, `h`, false, flagHelpUsage)
	flag.BoolVar(&flagHelp, `help`, false, ``)
}

func exit(code int) {
	fmt.Println(help)
	flag.PrintDefaults()
	os.Exit(code)
}

func decode(bucketDir string) error {
	d, err := journal.Open(bucketDir)
	if err != nil {
		return fmt.Errorf(`%s: %w`, bucketDir, err)
	}
	defer d.Close()

	var evt event.Event
	for {
		err := d.Next(&evt)
		if err != nil {
			break
		}
		fmt.Fprintf(os.Stdout, "frzcat event: host=%q source=%q sourcetype=%q indexTime=%d %v\n",
			d.Host(), d.Source(), d.SourceType(), evt.IndexTime, &evt)
	}
	if err := d.Err(); err != nil {
		return fmt.Errorf(`%s: %w`, bucketDir, err)
	}
	return nil
}

func cat() {
	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, `frzcat: need at least one bucket directory argument`)
		exit(1)
	}
	status := 0
	for _, arg := range args {
		fmt.Fprintf(os.Stdout, `frzcat info: decoding %q...`+"\n", arg)
		if err := decode(arg); err != nil {
			fmt.Fprintln(os.Stderr, `frzcat decode err:`, err)
			status = 1
		}
	}
	os.Exit(status)
}

func main() {
	flag.Parse()
	if flagHelp {
		exit(0)
	}
	cat()
}

var help = `Small utility for decoding frozen journal bucket directories, for
manual inspection only; see cmd/frzexport for the full CLI.

Usage:

  frzcat [flags...] [bucket directories...]

Each argument is a directory expected to contain rawdata/journal.zst or
rawdata/journal.

Flags:
`
