package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/minwoo-choi/crossing/internal/domain/board"
	"github.com/minwoo-choi/crossing/internal/infrastructure/assets"
)

// Princess stands on the pedestal. Rescuing her wins the game.
type Princess struct {
	cache  *assets.Cache
	board  *board.Board
	sprite string
}

// NewPrincess creates the princess on her pedestal.
func NewPrincess(cache *assets.Cache, b *board.Board, sprite string) *Princess {
	return &Princess{cache: cache, board: b, sprite: sprite}
}

// Update does nothing; the princess is static.
func (p *Princess) Update(_ float64) {}

// Draw renders the princess on the pedestal tile.
func (p *Princess) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.board.PedestalX), float64(p.board.PedestalY)-float64(p.board.SpriteYOffset))
	screen.DrawImage(p.cache.Get(p.sprite), op)
}
