// package config holds the viewer configuration: window geometry, camera tuning,
// and asset locations. Values load from an optional TOML file layered over
// defaults, so a missing or partial file is never an error by itself.
package config

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/glade/common"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file Load falls back to when given an empty path.
const DefaultPath = "glade.toml"

// WindowConfig describes the display window.
type WindowConfig struct {
	// Width is the window width in pixels.
	Width int `toml:"width"`
	// Height is the window height in pixels.
	Height int `toml:"height"`
	// Title is the window title text.
	Title string `toml:"title"`
	// VSync toggles swap-interval synchronization with the display.
	VSync bool `toml:"vsync"`
}

// CameraConfig describes camera movement and zoom tuning.
type CameraConfig struct {
	// MoveSpeed is the camera travel speed in world units per second.
	MoveSpeed float32 `toml:"move_speed"`
	// MouseSensitivity scales cursor deltas into yaw/pitch degrees.
	MouseSensitivity float32 `toml:"mouse_sensitivity"`
	// ZoomMin is the lower bound of the scroll-wheel zoom in degrees of field of view.
	ZoomMin float32 `toml:"zoom_min"`
	// ZoomMax is the upper bound of the scroll-wheel zoom in degrees of field of view.
	ZoomMax float32 `toml:"zoom_max"`
}

// Config is the root viewer configuration.
type Config struct {
	// Window holds display window settings.
	Window WindowConfig `toml:"window"`
	// Camera holds camera tuning settings.
	Camera CameraConfig `toml:"camera"`
	// AssetDir is the directory texture image files are loaded from.
	AssetDir string `toml:"asset_dir"`
	// Profiler enables periodic frame statistics logging.
	Profiler bool `toml:"profiler"`
	// Debug enables debug-level engine logging.
	Debug bool `toml:"debug"`
}

// Default returns the configuration used when no file overrides are present.
//
// Returns:
//   - *Config: a fresh config populated with default values
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 800,
			Title:  "glade",
			VSync:  true,
		},
		Camera: CameraConfig{
			MoveSpeed:        2.5,
			MouseSensitivity: 0.1,
			ZoomMin:          1,
			ZoomMax:          45,
		},
		AssetDir: "textures",
		Profiler: false,
		Debug:    false,
	}
}

// Load reads a TOML config file and layers it over Default. An empty path
// reads DefaultPath. A missing file is not an error: the defaults are
// returned unchanged. A present but malformed file is an error.
//
// Parameters:
//   - path: the TOML file path to read, or "" for DefaultPath
//
// Returns:
//   - *Config: the merged configuration
//   - error: error if the file exists but cannot be read or parsed
func Load(path string) (*Config, error) {
	path = common.Coalesce(path, DefaultPath)
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to a TOML file.
//
// Parameters:
//   - path: the file path to write
//   - cfg: the configuration to serialize
//
// Returns:
//   - error: error if marshalling or writing fails
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
