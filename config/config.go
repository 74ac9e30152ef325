// Package config provides path resolution and fixed settings for the tool.
// Everything here is passed into the other packages explicitly so they stay
// testable with synthetic paths and thresholds.
package config

import (
	"os"
	"path/filepath"
)

// CatalogDir returns the base directory holding the Data/ and Images/
// folders. An explicit override wins; otherwise the directory of the running
// executable is used, falling back to the working directory.
func CatalogDir(override string) string {
	if override != "" {
		return override
	}
	exe, err := os.Executable()
	if err == nil {
		return filepath.Dir(exe)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// TerminalSettingsPath returns the per-user Windows Terminal settings file.
// An explicit override wins; otherwise the well-known packaged location under
// LOCALAPPDATA is used. An empty return means the location could not be
// resolved on this system.
func TerminalSettingsPath(override string) string {
	if override != "" {
		return override
	}
	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		return ""
	}
	return filepath.Join(localAppData,
		"Packages", "Microsoft.WindowsTerminal_8wekyb3d8bbwe", "LocalState", "settings.json")
}
