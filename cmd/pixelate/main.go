// ABOUTME: CLI entry point: parses flags and settings, then runs one rendering pass
// ABOUTME: Rendered grid and diagnostics go to stdout; logs and errors go to stderr

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/pixelate-go/internal/config"
	pxlog "github.com/mauromedda/pixelate-go/internal/log"
	"github.com/mauromedda/pixelate-go/internal/pathutil"
	"github.com/mauromedda/pixelate-go/internal/pipeline"
	"github.com/mauromedda/pixelate-go/internal/render"
	"github.com/mauromedda/pixelate-go/pkg/image"
	"github.com/mauromedda/pixelate-go/pkg/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	args, err := parseFlags(argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		// flag has already printed the problem and usage.
		return 1
	}

	if args.version {
		fmt.Fprintf(stdout, "pixelate %s (%s)\n", version, commit)
		return 0
	}

	if err := execute(ctx, args, stdout); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func execute(ctx context.Context, args cliArgs, stdout io.Writer) error {
	settings, err := loadSettings(args.configPath)
	if err != nil {
		return err
	}
	if args.verbose || settings.Verbose {
		pxlog.SetLevel(pxlog.LevelDebug)
	}

	opts, filter, err := resolveOptions(args, settings)
	if err != nil {
		return err
	}

	req, err := pipeline.ParseArgs(args.positional)
	if err != nil {
		return err
	}
	if len(args.positional) == 3 {
		pxlog.Debug("Got args: %d %d", req.Width, req.Height)
	}
	if resolved := pathutil.ResolveReadPath(req.Path); resolved != req.Path {
		pxlog.Debug("resolved image path %q to %q", req.Path, resolved)
		req.Path = resolved
	}
	req.Render = opts

	p := &pipeline.Pipeline{
		Decoder: image.FileDecoder{},
		Resizer: image.Resizer{Filter: filter},
		Columns: outputColumns(stdout),
	}
	_, err = p.Run(ctx, stdout, req)
	return err
}

func loadSettings(path string) (*config.Settings, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return config.Load(cwd)
}

// resolveOptions combines flags with settings; a non-empty flag wins.
func resolveOptions(args cliArgs, s *config.Settings) (render.Options, image.Filter, error) {
	pick := func(flagValue, setting string) string {
		if flagValue != "" {
			return flagValue
		}
		return setting
	}

	mode, err := render.ParseMode(pick(args.mode, s.Mode))
	if err != nil {
		return render.Options{}, 0, fmt.Errorf("%w: %w", pipeline.ErrInput, err)
	}
	addressing, err := render.ParseAddressing(pick(args.addressing, s.Addressing))
	if err != nil {
		return render.Options{}, 0, fmt.Errorf("%w: %w", pipeline.ErrInput, err)
	}
	filter, err := image.ParseFilter(pick(args.filter, s.Filter))
	if err != nil {
		return render.Options{}, 0, fmt.Errorf("%w: %w", pipeline.ErrInput, err)
	}
	return render.Options{Mode: mode, Addressing: addressing}, filter, nil
}

// outputColumns returns the terminal width behind w, or 0.
func outputColumns(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return terminal.Columns(f)
	}
	return 0
}

// printError writes "error: <err>" with the prefix styled for terminals.
func printError(w io.Writer, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	fmt.Fprintf(w, "%s %v\n", style.Render("error:"), err)
}
