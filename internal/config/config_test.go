package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "../../data", cfg.Data.Dir)
	assert.Equal(t, "go", cfg.Scaffold.Extension)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
}

func TestToTOMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.Dir = "../inputs"
	cfg.Scaffold.Extension = "py"
	cfg.Logging.Level = "debug"

	out := cfg.ToTOML()

	require.True(t, strings.Contains(out, `dir = "../inputs"`), "data dir missing from TOML:\n%s", out)
	assert.Contains(t, out, `extension = "py"`)
	assert.Contains(t, out, `level = "debug"`)
}
