package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/docopt/docopt-go"
)

const version = "0.1.0"

const usage = `bamTrimmer - trim reads to a fixed length and convert to uBAM.

Keeps the highest quality window of --keep-length bases from every read
that is at least that long. Shorter reads are dropped.

Usage:
  bamTrimmer <bam> [-o <path>] [--keep-length=<n>]
  bamTrimmer -h | --help
  bamTrimmer --version

Options:
  -o <path>, --output=<path>  Output file name. [default: ./output.ubam]
  --keep-length=<n>           Sequence length for keeping. [default: 145]
  -h --help                   Show this screen.
  --version                   Show version.
`

type options struct {
	Input      string
	Output     string
	KeepLength int
}

func parseArgs(p *docopt.Parser, argv []string) (*options, error) {
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, err
	}

	var o options
	if o.Input, err = opts.String("<bam>"); err != nil {
		return nil, err
	}
	if o.Output, err = opts.String("--output"); err != nil {
		return nil, err
	}
	if o.KeepLength, err = opts.Int("--keep-length"); err != nil {
		return nil, fmt.Errorf("--keep-length: %w", err)
	}
	if o.KeepLength <= 0 {
		return nil, fmt.Errorf("--keep-length must be positive, got %d", o.KeepLength)
	}
	return &o, nil
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bamTrimmer",
	})

	opts, err := parseArgs(&docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}, os.Args[1:])
	if err != nil {
		fmt.Fprint(os.Stderr, usage)
		logger.Fatal("invalid arguments", "err", err)
	}

	logger.Info("trimming reads", "input", opts.Input, "output", opts.Output, "keep_length", opts.KeepLength)
	stats, err := ProcessReads(opts.Input, opts.Output, opts.KeepLength)
	if err != nil {
		logger.Fatal("error processing reads", "err", err)
	}

	reportStats(os.Stdout, stats)
	fmt.Println("\nTrimming completed")
}
