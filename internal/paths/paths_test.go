package paths

import (
	"path/filepath"
	"testing"
)

func TestAppDir(t *testing.T) {
	got, err := AppDir()
	if err != nil {
		t.Fatalf("AppDir() error = %v", err)
	}
	if filepath.Base(got) != "puzzlein" {
		t.Errorf("AppDir() = %q, want a puzzlein directory", got)
	}
}

func TestConfigPath(t *testing.T) {
	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if filepath.Base(got) != "config.toml" {
		t.Errorf("ConfigPath() = %q, want config.toml", got)
	}

	dir, err := AppDir()
	if err != nil {
		t.Fatalf("AppDir() error = %v", err)
	}
	if filepath.Dir(got) != dir {
		t.Errorf("ConfigPath() dir = %q, want %q", filepath.Dir(got), dir)
	}
}

func TestLogPath(t *testing.T) {
	got, err := LogPath()
	if err != nil {
		t.Fatalf("LogPath() error = %v", err)
	}
	if filepath.Base(got) != "puzzlein.log" {
		t.Errorf("LogPath() = %q, want puzzlein.log", got)
	}
}
