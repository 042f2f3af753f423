// ABOUTME: CLI flag parsing using the stdlib flag package
// ABOUTME: Supports --mode, --addressing, --filter, --config, --verbose, --version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	mode       string
	addressing string
	filter     string
	configPath string
	verbose    bool
	version    bool
	positional []string
}

func newFlagSet(args *cliArgs, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("pixelate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&args.mode, "mode", "", "Print mode: default or per-row")
	fs.StringVar(&args.addressing, "addressing", "", "Pixel addressing: column-stride or row-major")
	fs.StringVar(&args.filter, "filter", "", "Resampling filter: lanczos, catmullrom, or box")
	fs.StringVar(&args.configPath, "config", "", "Read settings from this YAML file only")
	fs.BoolVar(&args.verbose, "verbose", false, "Debug logging to stderr")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	fs.Usage = func() { printUsage(stderr, fs) }
	return fs
}

// parseFlags parses argv (without the program name). flag.ErrHelp is
// returned for -h/--help after usage has been printed.
func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := newFlagSet(&args, stderr)
	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	args.positional = fs.Args()
	return args, nil
}
