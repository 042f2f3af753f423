// ABOUTME: Standard filesystem paths for pixelate settings
// ABOUTME: Global file under the user config dir; project file .pixelate.yaml in the working directory

package config

import (
	"os"
	"path/filepath"
)

const (
	appDirName      = "pixelate"
	projectFileName = ".pixelate.yaml"
)

// GlobalConfigFile returns the user-global settings file,
// $XDG_CONFIG_HOME/pixelate/config.yaml on Linux.
func GlobalConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".", appDirName, "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appDirName, "config.yaml")
}

// ProjectConfigFile returns the project-local settings file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}
