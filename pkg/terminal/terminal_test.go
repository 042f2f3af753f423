// ABOUTME: Tests for terminal queries against non-terminal files
// ABOUTME: A regular file must never be reported as a terminal

package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegularFileIsNotTerminal(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
	if got := Columns(f); got != 0 {
		t.Errorf("Columns = %d, want 0", got)
	}
	if _, _, err := Size(f); err == nil {
		t.Error("Size on regular file should fail")
	}
}
