package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "DOOM1.WAD", cfg.WAD)
	assert.Equal(t, "E1M1", cfg.Level)
	assert.Equal(t, 0.05, cfg.Scale)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 1024, cfg.Height)
	assert.Equal(t, int64(64), cfg.CacheMB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ByKind)
}

func TestLoadConfigPrecedence(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "wadlines.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(""+
		"wad: file.wad\n"+
		"level: E2M1\n"+
		"scale: 0.5\n"+
		"format: png\n"+
		"by-kind: true\n"), 0o644))

	cfg, err := loadConfig([]string{"--config", configFile})
	require.NoError(t, err)
	assert.Equal(t, "file.wad", cfg.WAD)
	assert.Equal(t, "E2M1", cfg.Level)
	assert.Equal(t, 0.5, cfg.Scale)
	assert.Equal(t, "png", cfg.Format)
	assert.True(t, cfg.ByKind)

	// Environment beats the file
	t.Setenv("WADLINES_SCALE", "0.25")
	t.Setenv("WADLINES_LINE_WIDTH", "3")
	cfg, err = loadConfig([]string{"--config", configFile})
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Scale)
	assert.Equal(t, 3.0, cfg.LineWidth)
	assert.Equal(t, "E2M1", cfg.Level)

	// Flags beat the environment
	cfg, err = loadConfig([]string{"--config", configFile, "--scale", "2", "--level", "MAP07"})
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Scale)
	assert.Equal(t, "MAP07", cfg.Level)
	assert.Equal(t, "file.wad", cfg.WAD)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--colour"}},
		{"zero scale", []string{"--scale", "0"}},
		{"negative scale", []string{"--scale", "-1"}},
		{"unknown format", []string{"--format", "bmp"}},
		{"empty wad", []string{"--wad", ""}},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "none.yaml")}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := loadConfig(test.args)
			assert.Error(t, err)
		})
	}
}

func TestSinkOptions(t *testing.T) {
	cfg := &Config{Width: 10, Height: 20, LineWidth: 1.5, ByKind: true}
	o := cfg.sinkOptions()
	assert.Equal(t, 10, o.Width)
	assert.Equal(t, 20, o.Height)
	assert.Equal(t, 1.5, o.LineWidth)
	assert.True(t, o.ByKind)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug", "")
	require.NoError(t, err)
	assert.True(t, l.IsLevelEnabled(logrus.DebugLevel))

	logFile := filepath.Join(t.TempDir(), "wadlines.log")
	l, err = newLogger("warn", logFile)
	require.NoError(t, err)
	l.Warn("written")
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")

	_, err = newLogger("loud", "")
	assert.Error(t, err)
}
