// Package config provides configuration loading for commit chronicle.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the chronicle configuration directory.
//
// Resolution:
//   - $CHRONICLE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/commitchronicle if set (respects XDG on any platform)
//   - %AppData%/commitchronicle on Windows
//   - ~/.config/commitchronicle on macOS and Linux
func Dir() string {
	if dir := os.Getenv("CHRONICLE_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "commitchronicle")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "commitchronicle")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "commitchronicle")
}

// DataDir returns the directory that holds persisted journal state
// (the key/value store files). It lives under the config directory.
func DataDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "data")
}
