package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default returns the compiled-in configuration for the workstation.
func Default() Config {
	return Config{
		StateFile: "/tmp/tv.state",
		Desktop: Desktop{
			Outputs: []VideoOutput{
				{Name: "DP-1", Workspaces: []string{"1", "2", "3"}},
				{Name: "DP-2", Workspaces: []string{"4", "5", "6"}},
				{Name: "DP-3", Workspaces: []string{"7", "8", "9"}},
			},
			AudioSink: "alsa_output.pci-0000_09_00.4.analog-stereo",
		},
		TV: TV{
			Output: VideoOutput{
				Name:       "HDMI-A-1",
				Workspaces: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
			},
			AudioSink: "alsa_output.pci-0000_07_00.1.hdmi-stereo",
			Scale:     "1.5",
		},
		Notification: Notification{
			Window:   "tv-transition",
			Duration: 3 * time.Second,
		},
		Delays: Delays{
			TVSettle:      1 * time.Second,
			TVRelease:     1 * time.Second,
			DesktopSettle: 2 * time.Second,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tvctl/config.yaml, or ~/.config/tvctl/config.yaml
// when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tvctl", "config.yaml")
}

// Load reads an optional YAML override file on top of Default().
// An empty path or a missing file yields the defaults unchanged.
// Keys absent from the file keep their default values; lists present in the file replace
// the default lists entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
