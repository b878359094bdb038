package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1024, cfg.Graphics.Width)
	assert.Equal(t, 768, cfg.Graphics.Height)
	assert.False(t, cfg.Graphics.Fullscreen)

	assert.Equal(t, 100.0, cfg.Room.WallHeight)
	assert.Equal(t, 8.0, cfg.Room.WallDepth)
	assert.Equal(t, 8.0, cfg.Room.TileHeight)
	assert.Equal(t, "#91999f", cfg.Room.WallColor)
	assert.Equal(t, "#998c6e", cfg.Room.FloorColor)
	assert.Empty(t, cfg.Room.Map)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)
}

func TestLoadFromFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roomviewer.yaml")
	data := []byte(`
graphics:
  width: 1280
  fullscreen: true
room:
  wall_height: 140
  hide_walls: true
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, path))

	// overridden values
	assert.Equal(t, 1280, cfg.Graphics.Width)
	assert.True(t, cfg.Graphics.Fullscreen)
	assert.Equal(t, 140.0, cfg.Room.WallHeight)
	assert.True(t, cfg.Room.HideWalls)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched keys keep their defaults
	assert.Equal(t, 768, cfg.Graphics.Height)
	assert.Equal(t, 8.0, cfg.Room.WallDepth)
	assert.Equal(t, "#91999f", cfg.Room.WallColor)
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graphics: [not a map"), 0o644))

	cfg := Default()
	assert.Error(t, loadFromFile(cfg, path))
}
