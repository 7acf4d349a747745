// Command frzexport is the full CLI surface for decoding frozen journal
// buckets and exporting their events, grounded on go-dictzip's cmd/dictzip
// for flag registration and exit-code style. Unlike frzcat it resolves its
// source through the objstore package, so "gs://bucket/prefix" and local
// directory sources are handled uniformly and output can be written back
// to either destination.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"cloud.google.com/go/storage"

	"github.com/frostlake/frzjournal/event"
	"github.com/frostlake/frzjournal/journal"
	"github.com/frostlake/frzjournal/objstore"
	"github.com/frostlake/frzjournal/sink"
)

const (
	// ExitCodeSuccess is the exit code for a clean run.
	ExitCodeSuccess int = iota
	// ExitCodeFlagParseError is the exit code for a CLI flag parsing error.
	ExitCodeFlagParseError
	// ExitCodeUnknownError is the exit code for any unhandled error,
	// matching spec.md §6's "exit code 0 on success, 1 on any unhandled
	// error" rule (both non-zero paths collapse to the same process exit
	// status; the distinct constants exist for log clarity).
	ExitCodeUnknownError int = 1
)

func init() {
	// See ianlewis/go-dictzip's cmd/dictzip for why this is necessary: it
	// keeps a bare "--help" after a positional source argument from being
	// misread as a subcommand name.
	cli.HelpFlag = &cli.BoolFlag{
		Name:               `d41d8cd98f00b204e980`,
		DisableDefaultText: true,
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      `frzexport`,
		Usage:     `Decode frozen journal buckets and export their events.`,
		ArgsUsage: `source`,
		Description: `source is "gs://bucket[/prefix]" or a local "directory[/prefix]" ` +
			`containing one or more bucket directories.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: `output-bucket`, Usage: `GCS bucket to write decoded output to, instead of a local directory`},
			&cli.StringFlag{Name: `output-prefix`, Usage: `prefix applied to every output object/file name`, Value: `decoded/`},
			&cli.StringFlag{Name: `project`, Usage: `cloud project override`},
			&cli.BoolFlag{Name: `console`, Usage: `print JSON objects to stdout instead of writing to object storage`},
			&cli.BoolFlag{Name: `verbose`, Aliases: []string{`v`}, Usage: `raise log verbosity`},
			&cli.BoolFlag{Name: `help`, Aliases: []string{`h`}, Usage: `print this help text and exit`, DisableDefaultText: true},
		},
		HideHelp:        true,
		HideHelpCommand: true,
		Action:          run,
	}
}

func run(c *cli.Context) error {
	if c.Bool(`help`) {
		return cli.ShowAppHelp(c)
	}
	if c.NArg() != 1 {
		return fmt.Errorf(`%w: expected exactly one source argument`, ErrFlagParse)
	}
	source := c.Args().Get(0)
	verbose := c.Bool(`verbose`)

	ctx := context.Background()
	store, err := objstore.New(ctx, source, c.String(`project`))
	if err != nil {
		return err
	}

	opener, err := resolveOpener(ctx, c)
	if err != nil {
		return err
	}

	objs, err := store.List(ctx)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf(`frzexport: found %d bucket(s) under %q`, len(objs), source)
	}

	start := time.Now()
	var decoded, failed int
	for _, obj := range objs {
		n, err := processBucket(ctx, store, opener, obj, verbose)
		decoded += n
		if err != nil {
			log.Printf(`frzexport: %s: %v`, obj.Name, err)
			failed++
			continue
		}
	}

	log.Printf(`frzexport: decoded %d event(s) across %d bucket(s), %d failed, in %s`,
		decoded, len(objs), failed, time.Since(start))
	if failed > 0 {
		return fmt.Errorf(`frzexport: %d of %d bucket(s) failed`, failed, len(objs))
	}
	return nil
}

// processBucket decodes one bucket's journal to completion, matching
// gcs.py's process_bucket try/except-continue loop: an error here is
// logged by the caller and does not stop the batch.
//
//   original_source/gcs.py: process_bucket
func processBucket(ctx context.Context, store objstore.Store, opener sink.Opener, obj objstore.Object, verbose bool) (int, error) {
	r, err := store.Open(ctx, obj)
	if err != nil {
		return 0, err
	}
	d, err := journal.OpenReader(r, obj.Compressed)
	if err != nil {
		return 0, err
	}
	defer d.Close()

	s, err := opener.Open(obj.Name)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	var evt event.Event
	var n int
	for {
		if err := d.Next(&evt); err != nil {
			break
		}
		rec := sink.NewRecord(d.Host(), d.Source(), d.SourceType(), &evt)
		if err := s.Write(rec); err != nil {
			return n, err
		}
		n++
	}
	if err := d.Err(); err != nil {
		return n, err
	}
	if verbose {
		log.Printf(`frzexport: %s: decoded %d event(s)`, obj.Name, n)
	}
	return n, nil
}

func resolveOpener(ctx context.Context, c *cli.Context) (sink.Opener, error) {
	if c.Bool(`console`) {
		return sink.NewConsoleOpener(os.Stdout), nil
	}
	prefix := c.String(`output-prefix`)
	if bucketName := c.String(`output-bucket`); bucketName != `` {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		return sink.NewGCSJSONLOpener(ctx, client, bucketName, prefix), nil
	}
	return sink.NewLocalJSONLOpener(`.`, prefix), nil
}

// ErrFlagParse is returned for CLI usage errors, distinct from a runtime
// decoding failure.
var ErrFlagParse = errors.New(`frzexport: parsing flags`)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, `frzexport:`, err)
		if errors.Is(err, ErrFlagParse) {
			os.Exit(ExitCodeFlagParseError)
		}
		os.Exit(ExitCodeUnknownError)
	}
	os.Exit(ExitCodeSuccess)
}
