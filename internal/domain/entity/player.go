package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/minwoo-choi/crossing/internal/domain/board"
	"github.com/minwoo-choi/crossing/internal/infrastructure/assets"
)

// Player moves one grid cell per key press, clamped to the board.
type Player struct {
	cache  *assets.Cache
	board  *board.Board
	sprite string

	Col int
	Row int

	intent board.Direction
}

// NewPlayer creates the player at the board's spawn cell.
func NewPlayer(cache *assets.Cache, b *board.Board, sprite string) *Player {
	return &Player{
		cache:  cache,
		board:  b,
		sprite: sprite,
		Col:    b.SpawnCol,
		Row:    b.SpawnRow,
	}
}

// SetIntent stores the direction to apply on the next update. Only the
// last intent before the update wins.
func (p *Player) SetIntent(dir board.Direction) {
	p.intent = dir
}

// Update applies the pending movement intent.
func (p *Player) Update(_ float64) {
	if p.intent == board.DirNone {
		return
	}
	dc, dr := p.intent.Step()
	p.Col = p.board.ClampCol(p.Col + dc)
	p.Row = p.board.ClampRow(p.Row + dr)
	p.intent = board.DirNone
}

// Draw renders the player sprite at its cell.
func (p *Player) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.board.PixelX(p.Col), p.board.PixelY(p.Row)-float64(p.board.SpriteYOffset))
	screen.DrawImage(p.cache.Get(p.sprite), op)
}

// Reset snaps the player back to spawn.
func (p *Player) Reset() {
	p.Col = p.board.SpawnCol
	p.Row = p.board.SpawnRow
	p.intent = board.DirNone
}

// PixelX returns the player's pixel x origin.
func (p *Player) PixelX() float64 {
	return p.board.PixelX(p.Col)
}
