// ABOUTME: Image file decoding into flat pixel buffers
// ABOUTME: PNG, JPEG, GIF from the standard library; WebP, BMP, TIFF from golang.org/x/image

package image

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	goimage "image"
	"io"
	"os"

	// Register decoders for standard formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mauromedda/pixelate-go/pkg/pixel"
)

// MaxPixels bounds width*height of a decoded image.
const MaxPixels = 64 << 20

const headerPeek = 64 << 10

// ErrTooLarge is returned for images whose header exceeds MaxPixels.
var ErrTooLarge = errors.New("image too large")

// Decoded is a decoded image together with its detected format name.
type Decoded struct {
	Buffer pixel.Buffer
	Format string
}

// FileDecoder decodes images from the filesystem.
type FileDecoder struct{}

// Decode opens path and decodes it.
func (FileDecoder) Decode(path string) (Decoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return Decoded{}, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()
	return DecodeReader(f)
}

// DecodeReader decodes an image stream, checking the header dimensions
// before decoding pixel data.
func DecodeReader(r io.Reader) (Decoded, error) {
	br := bufio.NewReaderSize(r, headerPeek)

	// A header that does not fit in the peek window skips the size check.
	header, err := br.Peek(headerPeek)
	if err != nil && !errors.Is(err, io.EOF) {
		return Decoded{}, fmt.Errorf("reading image header: %w", err)
	}
	if len(header) == 0 {
		return Decoded{}, fmt.Errorf("empty image data")
	}

	if cfg, _, err := goimage.DecodeConfig(bytes.NewReader(header)); err == nil {
		if cfg.Width < 0 || cfg.Height < 0 || cfg.Width*cfg.Height > MaxPixels {
			return Decoded{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
		}
	}

	img, format, err := goimage.Decode(br)
	if err != nil {
		return Decoded{}, fmt.Errorf("decoding image: %w", err)
	}
	return Decoded{Buffer: pixel.FromImage(img), Format: format}, nil
}
