package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings are optional user overrides loaded from settings.toml next to
// the binary. Zero-valued fields leave the baked-in config untouched.
type Settings struct {
	Scale     int `toml:"scale"`
	Framerate int `toml:"framerate"`
	Lives     int `toml:"lives"`
}

// LoadSettings reads a settings.toml file. A missing file is not an
// error; it simply yields no overrides.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &s, nil
}

// Apply folds the overrides into the loaded config.
func (s *Settings) Apply(cfg *GameConfig) {
	if s.Scale > 0 {
		cfg.Display.Scale = s.Scale
	}
	if s.Framerate > 0 {
		cfg.Display.Framerate = s.Framerate
	}
	if s.Lives > 0 {
		cfg.Board.DefaultLives = s.Lives
	}
}
