package system

import (
	"math/rand"

	"github.com/minwoo-choi/crossing/internal/domain/board"
	"github.com/minwoo-choi/crossing/internal/domain/entity"
	"github.com/minwoo-choi/crossing/internal/domain/session"
	"github.com/minwoo-choi/crossing/internal/infrastructure/assets"
	"github.com/minwoo-choi/crossing/internal/infrastructure/config"
)

// World is the assembled entity set for one session. Enemies are kept
// both concretely (for the collision rules) and inside the roster.
type World struct {
	Board    *board.Board
	Enemies  []*entity.Enemy
	Player   *entity.Player
	Princess *entity.Princess
	Gem      *entity.Gem
	Roster   *entity.Roster
}

// BuildWorld constructs the board and entities from config. A nil cache
// is valid for headless runs that never draw.
func BuildWorld(cfg *config.BoardConfig, cache *assets.Cache, sess *session.State, rng *rand.Rand) *World {
	b := LoadBoard(cfg)

	laneSpan := cfg.LastLane - cfg.FirstLane + 1
	enemies := make([]*entity.Enemy, 0, cfg.Lanes.Count)
	rosterEnemies := make([]entity.Entity, 0, cfg.Lanes.Count)
	for i := 0; i < cfg.Lanes.Count; i++ {
		lane := cfg.FirstLane + i%laneSpan
		e := entity.NewEnemy(cache, b, cfg.Sprites.Enemy, lane, cfg.Lanes.MinSpeed, cfg.Lanes.MaxSpeed, rng)
		enemies = append(enemies, e)
		rosterEnemies = append(rosterEnemies, e)
	}

	player := entity.NewPlayer(cache, b, cfg.Sprites.Player)
	princess := entity.NewPrincess(cache, b, cfg.Sprites.Princess)
	gem := entity.NewGem(cache, b, cfg.Sprites.Gem, sess, rng)

	return &World{
		Board:    b,
		Enemies:  enemies,
		Player:   player,
		Princess: princess,
		Gem:      gem,
		Roster:   entity.NewRoster(rosterEnemies, player, princess, gem),
	}
}

// Collide runs the outcome rules against the world's session.
func (w *World) Collide(sess *session.State) {
	entity.ResolveCollisions(w.Enemies, w.Player, w.Gem, sess, w.Board)
}
