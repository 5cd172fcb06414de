package entity

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/minwoo-choi/crossing/internal/domain/board"
	"github.com/minwoo-choi/crossing/internal/infrastructure/assets"
)

// Enemy crosses its lane left to right at a rolled speed, wraps past the
// right edge, and re-rolls.
type Enemy struct {
	cache  *assets.Cache
	board  *board.Board
	sprite string
	rng    *rand.Rand

	Lane  int
	X     float64
	Speed float64

	minSpeed float64
	maxSpeed float64
}

// NewEnemy creates an enemy on the given lane with a seeded speed roll.
func NewEnemy(cache *assets.Cache, b *board.Board, sprite string, lane int, minSpeed, maxSpeed float64, rng *rand.Rand) *Enemy {
	e := &Enemy{
		cache:    cache,
		board:    b,
		sprite:   sprite,
		rng:      rng,
		Lane:     lane,
		minSpeed: minSpeed,
		maxSpeed: maxSpeed,
	}
	e.Reset()
	return e
}

// Update moves the enemy along its lane, scaled by dt.
func (e *Enemy) Update(dt float64) {
	e.X += e.Speed * dt
	if e.X > e.board.Width() {
		e.X = -float64(e.board.TileWidth)
		e.Speed = e.rollSpeed()
	}
}

// Draw renders the enemy sprite at its lane position.
func (e *Enemy) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(e.X, e.board.PixelY(e.Lane)-float64(e.board.SpriteYOffset))
	screen.DrawImage(e.cache.Get(e.sprite), op)
}

// Reset parks the enemy off the left edge with a fresh speed.
func (e *Enemy) Reset() {
	e.X = -float64(e.board.TileWidth)
	e.Speed = e.rollSpeed()
}

func (e *Enemy) rollSpeed() float64 {
	return e.minSpeed + e.rng.Float64()*(e.maxSpeed-e.minSpeed)
}
