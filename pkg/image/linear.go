// ABOUTME: sRGB <-> linear light conversion for resampling, via go-colorful transfer curves
// ABOUTME: Lookup tables are built once; rows convert in parallel under an errgroup

package image

import (
	"context"
	goimage "image"
	"runtime"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"
)

var (
	lutOnce    sync.Once
	toLinLUT   [256]uint16
	fromLinLUT [1 << 16]uint8
)

func buildLUTs() {
	for v := range toLinLUT {
		c := colorful.Color{R: float64(v) / 255}
		r, _, _ := c.LinearRgb()
		toLinLUT[v] = uint16(r*0xffff + 0.5)
	}
	for v := range fromLinLUT {
		r, _, _ := colorful.LinearRgb(float64(v)/0xffff, 0, 0).Clamped().RGB255()
		fromLinLUT[v] = r
	}
}

// toLinear expands 8-bit sRGB samples to 16-bit linear light. Alpha is
// widened unchanged.
func toLinear(ctx context.Context, src *goimage.NRGBA) (*goimage.NRGBA64, error) {
	lutOnce.Do(buildLUTs)

	b := src.Bounds()
	dst := goimage.NewNRGBA64(goimage.Rect(0, 0, b.Dx(), b.Dy()))
	err := eachRow(ctx, b.Dy(), func(y int) {
		s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		d := dst.Pix[dst.PixOffset(0, y):]
		for x := 0; x < b.Dx(); x++ {
			for c := 0; c < 3; c++ {
				v := toLinLUT[s[x*4+c]]
				d[x*8+c*2] = uint8(v >> 8)
				d[x*8+c*2+1] = uint8(v)
			}
			a := s[x*4+3]
			d[x*8+6] = a
			d[x*8+7] = a
		}
	})
	return dst, err
}

// toSRGB compresses 16-bit linear samples back to 8-bit sRGB.
func toSRGB(ctx context.Context, src *goimage.NRGBA64) (*goimage.NRGBA, error) {
	lutOnce.Do(buildLUTs)

	b := src.Bounds()
	dst := goimage.NewNRGBA(goimage.Rect(0, 0, b.Dx(), b.Dy()))
	err := eachRow(ctx, b.Dy(), func(y int) {
		s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		d := dst.Pix[dst.PixOffset(0, y):]
		for x := 0; x < b.Dx(); x++ {
			for c := 0; c < 3; c++ {
				v := uint16(s[x*8+c*2])<<8 | uint16(s[x*8+c*2+1])
				d[x*4+c] = fromLinLUT[v]
			}
			d[x*4+3] = s[x*8+6]
		}
	})
	return dst, err
}

// eachRow runs fn for every row index in [0, rows), spread across
// GOMAXPROCS workers. It stops scheduling rows once ctx is done.
func eachRow(ctx context.Context, rows int, fn func(y int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
