package entity

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/minwoo-choi/crossing/internal/domain/board"
	"github.com/minwoo-choi/crossing/internal/domain/session"
	"github.com/minwoo-choi/crossing/internal/infrastructure/assets"
)

// gemRespawnFrames is how long a collected gem stays hidden.
const gemRespawnFrames = 120

// Gem is the collectible. It bobs on its own frame counter, ignoring dt,
// and respawns on a random stone lane a while after being collected.
type Gem struct {
	cache   *assets.Cache
	board   *board.Board
	sprite  string
	rng     *rand.Rand
	session *session.State

	Col int
	Row int

	pulse   int
	respawn int
}

// NewGem creates the gem and places it on a random lane cell.
func NewGem(cache *assets.Cache, b *board.Board, sprite string, sess *session.State, rng *rand.Rand) *Gem {
	g := &Gem{
		cache:   cache,
		board:   b,
		sprite:  sprite,
		rng:     rng,
		session: sess,
	}
	g.Respawn()
	return g
}

// Update advances the bob animation and the respawn countdown. The time
// delta is ignored; the gem animates on its own frame counter.
func (g *Gem) Update(_ float64) {
	g.pulse++
	if !g.session.DisplayGem && g.respawn > 0 {
		g.respawn--
		if g.respawn == 0 {
			g.Respawn()
		}
	}
}

// Draw renders the gem with its bob offset applied.
func (g *Gem) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		g.board.PixelX(g.Col),
		g.board.PixelY(g.Row)-float64(g.board.SpriteYOffset)+g.BobOffset(),
	)
	screen.DrawImage(g.cache.Get(g.sprite), op)
}

// BobOffset returns the vertical animation offset for the current pulse.
func (g *Gem) BobOffset() float64 {
	return math.Sin(float64(g.pulse)/20) * 5
}

// Collect hides the gem and schedules its respawn.
func (g *Gem) Collect() {
	g.session.DisplayGem = false
	g.respawn = gemRespawnFrames
}

// Respawn places the gem on a random stone-lane cell and shows it.
func (g *Gem) Respawn() {
	g.Col = g.rng.Intn(g.board.Cols)
	g.Row = g.board.FirstLane + g.rng.Intn(g.board.LastLane-g.board.FirstLane+1)
	g.session.DisplayGem = true
}

// Reset re-places the gem for a fresh session.
func (g *Gem) Reset() {
	g.pulse = 0
	g.respawn = 0
	g.Respawn()
}
