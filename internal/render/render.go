// ABOUTME: Renders a pixel buffer as rows of background-coloured terminal cells
// ABOUTME: Default mode writes cell by cell; PerRow mode buffers each line in a RowBuffer

package render

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/pixelate-go/pkg/ansi"
	"github.com/mauromedda/pixelate-go/pkg/pixel"
)

// ErrOutOfRange is returned when the chosen addressing would read past the
// end of the pixel buffer.
var ErrOutOfRange = errors.New("pixel offset out of range")

// Options configures a rendering pass.
type Options struct {
	Mode       Mode
	Addressing Addressing
}

// Render writes buf to w as Width lines of Height one-space cells.
// Line c holds column c with rows visited from the last to the first.
// The buffer and addressing are checked before anything is written, and
// ctx is checked before each line.
func Render(ctx context.Context, w io.Writer, buf pixel.Buffer, opts Options) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	if err := checkRange(buf, opts.Addressing); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	switch opts.Mode {
	case ModePerRow:
		return renderPerRow(ctx, w, buf, opts.Addressing)
	default:
		return renderDirect(ctx, w, buf, opts.Addressing)
	}
}

// checkRange verifies that the largest offset the traversal reads, plus
// the green and blue samples after it, lies inside Pix.
func checkRange(buf pixel.Buffer, a Addressing) error {
	if buf.Width == 0 || buf.Height == 0 {
		return nil
	}
	last := a.offset(buf.Width-1, buf.Height-1, buf.Width, buf.Channels) + 2
	if last >= len(buf.Pix) {
		return fmt.Errorf("%w: %s addressing reads sample %d of %d for a %dx%d image (try row-major addressing)",
			ErrOutOfRange, a, last, len(buf.Pix), buf.Width, buf.Height)
	}
	return nil
}

// FirstLine returns line 0 of buf as Render would write it, without the
// trailing newline. Invalid or empty buffers yield "".
func FirstLine(buf pixel.Buffer, a Addressing) string {
	if buf.Validate() != nil || buf.Width == 0 || buf.Height == 0 {
		return ""
	}
	if checkRange(buf, a) != nil {
		return ""
	}
	line := NewRowBuffer()
	appendLine(line, buf, a, 0)
	return string(line.Bytes())
}

// appendLine appends the cells of output line column to line.
func appendLine(line *RowBuffer, buf pixel.Buffer, a Addressing, column int) {
	for row := buf.Height - 1; row >= 0; row-- {
		line.AppendString(ansi.Swatch(1, buf.ColorAt(a.offset(column, row, buf.Width, buf.Channels))))
	}
}

func renderDirect(ctx context.Context, w io.Writer, buf pixel.Buffer, a Addressing) error {
	for column := range buf.Width {
		if err := ctx.Err(); err != nil {
			return err
		}
		for row := buf.Height - 1; row >= 0; row-- {
			cell := ansi.Swatch(1, buf.ColorAt(a.offset(column, row, buf.Width, buf.Channels)))
			if _, err := io.WriteString(w, cell); err != nil {
				return fmt.Errorf("writing cell: %w", err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("writing line break: %w", err)
		}
	}
	return nil
}

func renderPerRow(ctx context.Context, w io.Writer, buf pixel.Buffer, a Addressing) error {
	for column := range buf.Width {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := NewRowBuffer()
		appendLine(line, buf, a, column)
		line.AppendByte('\n')
		if _, err := w.Write(line.Bytes()); err != nil {
			return fmt.Errorf("writing line %d: %w", column, err)
		}
	}
	return nil
}
