// Package paths resolves the puzzlein config locations.
package paths

import (
	"os"
	"path/filepath"
)

// AppDir returns the puzzlein config directory, ~/.config/puzzlein on
// Linux.
func AppDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "puzzlein"), nil
}

// ConfigPath returns the path to the puzzlein config file,
// ~/.config/puzzlein/config.toml.
func ConfigPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the default log file path,
// ~/.config/puzzlein/puzzlein.log.
func LogPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "puzzlein.log"), nil
}
