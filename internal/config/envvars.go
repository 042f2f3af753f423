// ABOUTME: Environment handling for settings: ${VAR} expansion and PIXELATE_* overrides
// ABOUTME: Unset variables expand to empty; overrides apply only when the variable is non-empty

package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// Environment variables that override file settings.
const (
	EnvMode       = "PIXELATE_MODE"
	EnvAddressing = "PIXELATE_ADDRESSING"
	EnvFilter     = "PIXELATE_FILTER"
	EnvVerbose    = "PIXELATE_VERBOSE"
)

// ResolveEnvVars expands ${VAR} patterns in the string fields of s.
func ResolveEnvVars(s *Settings) {
	s.Mode = expandEnv(s.Mode)
	s.Addressing = expandEnv(s.Addressing)
	s.Filter = expandEnv(s.Filter)
}

// ApplyEnvOverrides replaces fields of s with non-empty PIXELATE_*
// variables read through getenv. PIXELATE_VERBOSE accepts any
// strconv.ParseBool spelling; unparseable values are ignored.
func ApplyEnvOverrides(s *Settings, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvMode)); v != "" {
		s.Mode = v
	}
	if v := strings.TrimSpace(getenv(EnvAddressing)); v != "" {
		s.Addressing = v
	}
	if v := strings.TrimSpace(getenv(EnvFilter)); v != "" {
		s.Filter = v
	}
	if v := strings.TrimSpace(getenv(EnvVerbose)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Verbose = b
		}
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}
