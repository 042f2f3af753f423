// ABOUTME: Shared helpers for e2e tests: builds the pixelate binary once per run
// ABOUTME: Runs it in a pseudo-terminal via creack/pty or with plain pipes

package e2e

import (
	"bytes"
	"errors"
	goimage "image"
	"image/color"
	"image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"
	"testing"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// binary builds ./cmd/pixelate into a temp dir shared by the whole run.
func binary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "pixelate-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "pixelate")
		cmd := exec.Command("go", "build", "-o", binPath, "../cmd/pixelate")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = errors.New(string(out))
		}
	})
	if buildErr != nil {
		t.Fatalf("building pixelate: %v", buildErr)
	}
	return binPath
}

// env returns an environment free of user settings.
func env(t *testing.T) []string {
	t.Helper()
	home := t.TempDir()
	return append(os.Environ(),
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
		"PIXELATE_MODE=", "PIXELATE_ADDRESSING=", "PIXELATE_FILTER=", "PIXELATE_VERBOSE=",
	)
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := goimage.NewNRGBA(goimage.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 30), 128, uint8(y * 30), 255})
		}
	}
	path := filepath.Join(t.TempDir(), "e2e.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

// runPTY runs the binary attached to a cols x rows pseudo-terminal and
// returns everything it printed plus its exit error.
func runPTY(t *testing.T, cols, rows uint16, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binary(t), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = env(t)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: cols, Rows: rows})
	if err != nil {
		t.Fatalf("starting pty: %v", err)
	}
	defer ptmx.Close()

	var out bytes.Buffer
	_, err = io.Copy(&out, ptmx)
	// Linux reports EIO on the master once the child side closes.
	if err != nil && !errors.Is(err, syscall.EIO) {
		t.Fatalf("reading pty: %v", err)
	}
	return out.String(), cmd.Wait()
}

// runPipes runs the binary with stdout and stderr captured separately.
func runPipes(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := exec.Command(binary(t), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = env(t)

	var o, e bytes.Buffer
	cmd.Stdout = &o
	cmd.Stderr = &e
	err = cmd.Run()
	return o.String(), e.String(), err
}
