package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Board   *BoardConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	data, err := fs.ReadFile(l.fsys, "display.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read display.json: %w", err)
	}

	var cfg DisplayConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse display.json: %w", err)
	}

	return &cfg, nil
}

// LoadBoard loads board.json
func (l *Loader) LoadBoard() (*BoardConfig, error) {
	data, err := fs.ReadFile(l.fsys, "board.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read board.json: %w", err)
	}

	var cfg BoardConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse board.json: %w", err)
	}

	if len(cfg.RowImages) != cfg.Rows+1 {
		return nil, fmt.Errorf("board.json: rowImages needs %d entries (rows + pedestal), got %d",
			cfg.Rows+1, len(cfg.RowImages))
	}

	return &cfg, nil
}

// LoadAll loads all base configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	board, err := l.LoadBoard()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Board:   board,
	}, nil
}
