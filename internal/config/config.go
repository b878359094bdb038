// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Room     RoomConfig     `yaml:"room"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

// RoomConfig holds the room presentation settings.
type RoomConfig struct {
	// Map is the textual tile map; empty selects the built-in demo map.
	Map        string  `yaml:"map"`
	WallHeight float64 `yaml:"wall_height"`
	WallDepth  float64 `yaml:"wall_depth"`
	TileHeight float64 `yaml:"tile_height"`
	WallColor  string  `yaml:"wall_color"`
	FloorColor string  `yaml:"floor_color"`
	HideWalls  bool    `yaml:"hide_walls"`
	HideFloor  bool    `yaml:"hide_floor"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1024,
			Height: 768,
		},
		Room: RoomConfig{
			WallHeight: 100,
			WallDepth:  8,
			TileHeight: 8,
			WallColor:  "#91999f",
			FloorColor: "#998c6e",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
