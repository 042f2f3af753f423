// ABOUTME: Settings loading with global + project YAML files merged field by field
// ABOUTME: Values stay as strings here; the CLI parses them into render and resize enums

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration.
type Settings struct {
	Mode       string `yaml:"mode,omitempty"`
	Addressing string `yaml:"addressing,omitempty"`
	Filter     string `yaml:"filter,omitempty"`
	Verbose    bool   `yaml:"verbose,omitempty"`
}

// Load reads and merges the global and project-local settings files, then
// applies ${VAR} expansion and PIXELATE_* environment overrides.
// Missing files are not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	s := merge(global, project)
	finish(s)
	return s, nil
}

// LoadFile reads a single settings file in place of the global/project
// pair. Unlike Load, a missing file is an error.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	finish(s)
	return s, nil
}

func finish(s *Settings) {
	ResolveEnvVars(s)
	ApplyEnvOverrides(s, os.Getenv)
}

// loadFile decodes one YAML file. Unknown keys are rejected; an empty
// file yields zero Settings.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}

	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values win.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	if project.Mode != "" {
		result.Mode = project.Mode
	}
	if project.Addressing != "" {
		result.Addressing = project.Addressing
	}
	if project.Filter != "" {
		result.Filter = project.Filter
	}
	if project.Verbose {
		result.Verbose = true
	}
	return &result
}
