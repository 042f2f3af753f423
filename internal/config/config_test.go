// ABOUTME: Tests for settings loading, merging, and environment handling
// ABOUTME: Uses temp directories and t.Setenv for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeYAML(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points the user config dir at a fresh temp dir and clears overrides.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, v := range []string{EnvMode, EnvAddressing, EnvFilter, EnvVerbose} {
		t.Setenv(v, "")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Mode: "default", Filter: "box", Verbose: true}
	project := &Settings{Mode: "per-row", Addressing: "row-major"}

	got := merge(global, project)
	want := Settings{Mode: "per-row", Addressing: "row-major", Filter: "box", Verbose: true}
	if *got != want {
		t.Errorf("merge = %+v, want %+v", *got, want)
	}
	if global.Mode != "default" {
		t.Error("merge mutated global settings")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	if got := merge(nil, nil); got == nil || *got != (Settings{}) {
		t.Errorf("merge(nil, nil) = %+v", got)
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	_, err := loadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("loadFile = %v, want not-exist", err)
	}
}

func TestLoadFile_Parse(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "c.yaml")
	writeYAML(t, path, "mode: per-row\nfilter: catmullrom\nverbose: true\n")

	s, err := loadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{Mode: "per-row", Filter: "catmullrom", Verbose: true}
	if *s != want {
		t.Errorf("got %+v, want %+v", *s, want)
	}
}

func TestLoadFile_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.yaml")
	writeYAML(t, path, "")

	s, err := loadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if *s != (Settings{}) {
		t.Errorf("got %+v, want zero", *s)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeYAML(t, path, "mode: default\ncolour: red\n")

	_, err := loadFile(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("loadFile = %v, want error naming %s", err, path)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	isolate(t)
	project := t.TempDir()

	writeYAML(t, GlobalConfigFile(), "mode: per-row\nfilter: box\n")
	writeYAML(t, ProjectConfigFile(project), "filter: lanczos\n")

	s, err := Load(project)
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode != "per-row" || s.Filter != "lanczos" {
		t.Errorf("got %+v", *s)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	isolate(t)

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if *s != (Settings{}) {
		t.Errorf("got %+v, want zero", *s)
	}
}

func TestLoad_EnvOverridesAndExpansion(t *testing.T) {
	isolate(t)
	project := t.TempDir()

	writeYAML(t, ProjectConfigFile(project), "mode: ${MY_MODE}\naddressing: column-stride\n")
	t.Setenv("MY_MODE", "per-row")
	t.Setenv(EnvAddressing, "row-major")
	t.Setenv(EnvVerbose, "1")

	s, err := Load(project)
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{Mode: "per-row", Addressing: "row-major", Verbose: true}
	if *s != want {
		t.Errorf("got %+v, want %+v", *s, want)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	isolate(t)

	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestApplyEnvOverrides_BadBool(t *testing.T) {
	t.Parallel()

	s := &Settings{Verbose: true}
	ApplyEnvOverrides(s, func(k string) string {
		if k == EnvVerbose {
			return "maybe"
		}
		return ""
	})
	if !s.Verbose {
		t.Error("unparseable PIXELATE_VERBOSE changed the setting")
	}
}
