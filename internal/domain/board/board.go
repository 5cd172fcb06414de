// Package board holds the static grid geometry the game is played on.
package board

// Direction is a grid step direction for player movement.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// Step returns the column/row delta for the direction.
func (d Direction) Step() (dc, dr int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

// Board describes the tile grid: dimensions, tile sprites per row, and
// the pedestal tile the princess stands on.
type Board struct {
	Rows       int
	Cols       int
	TileWidth  int
	TileHeight int

	// RowImages maps row index to a sprite key. The extra last entry is
	// the pedestal sprite, drawn outside the row loop.
	RowImages []string

	PedestalX   int
	PedestalY   int
	PedestalCol int

	WaterRow  int
	FirstLane int
	LastLane  int

	SpawnCol int
	SpawnRow int

	// SpriteYOffset lifts character sprites so they sit on their tile.
	SpriteYOffset int
}

// PixelX returns the pixel origin of a column.
func (b *Board) PixelX(col int) float64 {
	return float64(col * b.TileWidth)
}

// PixelY returns the pixel origin of a row.
func (b *Board) PixelY(row int) float64 {
	return float64(row * b.TileHeight)
}

// Width returns the board width in pixels.
func (b *Board) Width() float64 {
	return float64(b.Cols * b.TileWidth)
}

// ClampCol limits a column to the board.
func (b *Board) ClampCol(col int) int {
	if col < 0 {
		return 0
	}
	if col >= b.Cols {
		return b.Cols - 1
	}
	return col
}

// ClampRow limits a row to the board.
func (b *Board) ClampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= b.Rows {
		return b.Rows - 1
	}
	return row
}

// PedestalSprite returns the sprite key of the pedestal tile.
func (b *Board) PedestalSprite() string {
	return b.RowImages[len(b.RowImages)-1]
}
