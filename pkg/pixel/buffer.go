// ABOUTME: Flat pixel sample buffer with explicit width, height, and channel count
// ABOUTME: Converts between image.Image and interleaved RGB/RGBA 8-bit samples

package pixel

import (
	"errors"
	"fmt"
	goimage "image"
	"image/color"

	"github.com/mauromedda/pixelate-go/pkg/ansi"
)

// ErrInvalidBuffer is wrapped by every Validate failure.
var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// Supported channel counts.
const (
	RGB  = 3
	RGBA = 4
)

// Buffer holds interleaved 8-bit samples, Channels per pixel, rows top first.
// Only the first three samples of each pixel carry colour; a fourth is alpha.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// New allocates a zeroed buffer of the given geometry.
func New(width, height, channels int) Buffer {
	return Buffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// Validate checks the geometry and that len(Pix) == Width*Height*Channels.
func (b Buffer) Validate() error {
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidBuffer, b.Width, b.Height)
	}
	if b.Channels != RGB && b.Channels != RGBA {
		return fmt.Errorf("%w: %d channels (want 3 or 4)", ErrInvalidBuffer, b.Channels)
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return fmt.Errorf("%w: %d samples for %dx%dx%d (want %d)",
			ErrInvalidBuffer, len(b.Pix), b.Width, b.Height, b.Channels, want)
	}
	return nil
}

// Stride returns the number of samples in one image row.
func (b Buffer) Stride() int {
	return b.Width * b.Channels
}

// ColorAt returns the RGB colour whose red sample sits at offset.
// The caller guarantees offset+2 < len(Pix).
func (b Buffer) ColorAt(offset int) ansi.Color {
	return ansi.Color{R: b.Pix[offset], G: b.Pix[offset+1], B: b.Pix[offset+2]}
}

// FromImage flattens img into a buffer. Opaque images get three channels,
// everything else four with non-premultiplied alpha. Paletted and grey
// images are expanded to RGB.
func FromImage(img goimage.Image) Buffer {
	bounds := img.Bounds()
	channels := RGBA
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = RGB
	}

	buf := New(bounds.Dx(), bounds.Dy(), channels)

	// Fast path for the common decoded NRGBA layout.
	if src, ok := img.(*goimage.NRGBA); ok && channels == RGBA {
		for y := range buf.Height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Pix[y*buf.Stride():(y+1)*buf.Stride()], src.Pix[start:start+buf.Stride()])
		}
		return buf
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf.Pix[i] = c.R
			buf.Pix[i+1] = c.G
			buf.Pix[i+2] = c.B
			if channels == RGBA {
				buf.Pix[i+3] = c.A
			}
			i += channels
		}
	}
	return buf
}

// Image returns the buffer as an *image.NRGBA. Three-channel buffers become
// fully opaque.
func (b Buffer) Image() *goimage.NRGBA {
	img := goimage.NewNRGBA(goimage.Rect(0, 0, b.Width, b.Height))
	if b.Channels == RGBA {
		copy(img.Pix, b.Pix)
		return img
	}
	for src, dst := 0, 0; src < len(b.Pix); src, dst = src+b.Channels, dst+4 {
		img.Pix[dst] = b.Pix[src]
		img.Pix[dst+1] = b.Pix[src+1]
		img.Pix[dst+2] = b.Pix[src+2]
		img.Pix[dst+3] = 0xff
	}
	return img
}

// FromNRGBA converts img back to a buffer with the given channel count,
// dropping alpha when channels is RGB.
func FromNRGBA(img *goimage.NRGBA, channels int) Buffer {
	bounds := img.Bounds()
	buf := New(bounds.Dx(), bounds.Dy(), channels)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := 0; x < buf.Width; x++ {
			copy(buf.Pix[i:i+channels], row[x*4:x*4+channels])
			i += channels
		}
	}
	return buf
}
