// ABOUTME: Decode, optional resize, render, and diagnostics for one image
// ABOUTME: Decoder and Resizer are interfaces so tests can substitute fixed buffers

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/pixelate-go/internal/log"
	"github.com/mauromedda/pixelate-go/internal/render"
	"github.com/mauromedda/pixelate-go/pkg/image"
	"github.com/mauromedda/pixelate-go/pkg/pixel"
	"github.com/mauromedda/pixelate-go/pkg/width"
)

// ErrDecode marks images that could not be read or decoded.
var ErrDecode = errors.New("failed to load the image")

// Decoder reads an image file into a pixel buffer.
type Decoder interface {
	Decode(path string) (image.Decoded, error)
}

// Resizer resamples a pixel buffer to an exact size.
type Resizer interface {
	Resize(ctx context.Context, buf pixel.Buffer, width, height int) (pixel.Buffer, error)
}

// Request describes one rendering pass. Width and Height of zero keep the
// decoded size.
type Request struct {
	Path   string
	Width  int
	Height int
	Render render.Options
}

// wantsResize reports whether both target dimensions are set.
func (r Request) wantsResize() bool {
	return r.Width != 0 && r.Height != 0
}

// Result summarizes a completed pass.
type Result struct {
	Format   string
	Width    int // decoded width
	Height   int // decoded height
	Channels int
	Resized  bool
	Rendered pixel.Buffer
}

// Pipeline wires a decoder and resizer to the renderer.
type Pipeline struct {
	Decoder Decoder
	Resizer Resizer
	// Columns is the width of the output terminal; 0 disables the
	// too-wide warning.
	Columns int
}

// Run renders req to w followed by the diagnostics lines.
func (p *Pipeline) Run(ctx context.Context, w io.Writer, req Request) (Result, error) {
	if req.Path == "" {
		return Result{}, fmt.Errorf("%w: no image provided", ErrInput)
	}

	decoded, err := p.Decoder.Decode(req.Path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	native := decoded.Buffer
	log.Debug("decoded %s: %dx%d, %d channels", decoded.Format, native.Width, native.Height, native.Channels)

	res := Result{
		Format:   decoded.Format,
		Width:    native.Width,
		Height:   native.Height,
		Channels: native.Channels,
		Rendered: native,
	}

	if req.wantsResize() {
		resized, err := p.Resizer.Resize(ctx, native, req.Width, req.Height)
		if err != nil {
			return Result{}, fmt.Errorf("resizing image: %w", err)
		}
		res.Rendered = resized
		res.Resized = true
	}

	if cols := LineWidth(res.Rendered, req.Render.Addressing); p.Columns > 0 && cols > p.Columns {
		log.Warn("lines are %d columns wide but the terminal has %d; output will wrap",
			cols, p.Columns)
	}

	if err := render.Render(ctx, w, res.Rendered, req.Render); err != nil {
		return Result{}, err
	}

	if err := WriteDiagnostics(w, res, req.Render.Mode); err != nil {
		return Result{}, err
	}
	return res, nil
}

// LineWidth is the visible terminal width of the first line Render would
// write for buf, or 0 when buf cannot be rendered with a.
func LineWidth(buf pixel.Buffer, a render.Addressing) int {
	return width.VisibleWidth(render.FirstLine(buf, a))
}

// WriteDiagnostics prints the summary line and, after a resize, the new size.
func WriteDiagnostics(w io.Writer, res Result, mode render.Mode) error {
	if _, err := fmt.Fprintf(w, "width: %d; height: %d; channels: %d; print mode: %s\n",
		res.Width, res.Height, res.Channels, mode); err != nil {
		return fmt.Errorf("writing diagnostics: %w", err)
	}
	if res.Resized {
		if _, err := fmt.Fprintf(w, "Resized to: %dx%d\n", res.Rendered.Width, res.Rendered.Height); err != nil {
			return fmt.Errorf("writing diagnostics: %w", err)
		}
	}
	return nil
}
