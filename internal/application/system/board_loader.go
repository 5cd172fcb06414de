package system

import (
	"github.com/minwoo-choi/crossing/internal/domain/board"
	"github.com/minwoo-choi/crossing/internal/infrastructure/config"
)

// LoadBoard builds the runtime board from its config.
func LoadBoard(cfg *config.BoardConfig) *board.Board {
	return &board.Board{
		Rows:          cfg.Rows,
		Cols:          cfg.Cols,
		TileWidth:     cfg.TileWidth,
		TileHeight:    cfg.TileHeight,
		RowImages:     cfg.RowImages,
		PedestalX:     cfg.Pedestal.X,
		PedestalY:     cfg.Pedestal.Y,
		PedestalCol:   cfg.Pedestal.Col,
		WaterRow:      cfg.WaterRow,
		FirstLane:     cfg.FirstLane,
		LastLane:      cfg.LastLane,
		SpawnCol:      cfg.PlayerSpawn.Col,
		SpawnRow:      cfg.PlayerSpawn.Row,
		SpriteYOffset: cfg.SpriteYOffset,
	}
}
