package entity

import (
	"github.com/minwoo-choi/crossing/internal/domain/board"
	"github.com/minwoo-choi/crossing/internal/domain/session"
)

// Score values awarded by the outcome rules.
const (
	ScoreCrossing = 100
	ScoreGem      = 50
)

// enemyHitWidth is the horizontal overlap, in pixels, that counts as a
// hit between an enemy and the player on the same lane.
const enemyHitWidth = 60

// ResolveCollisions applies the game's outcome rules after an update
// pass: enemy hits cost a life, the gem scores when stood on, the water
// row scores a crossing, and the pedestal cell wins the game.
//
// This lives outside the core loop on purpose; the playing scene invokes
// it through an optional hook and stays rule-agnostic.
func ResolveCollisions(enemies []*Enemy, player *Player, gem *Gem, sess *session.State, b *board.Board) {
	// Enemy overlap on the player's lane.
	px := player.PixelX()
	for _, e := range enemies {
		if e.Lane != player.Row {
			continue
		}
		if e.X > px-enemyHitWidth && e.X < px+enemyHitWidth {
			sess.Lives--
			player.Reset()
			if sess.Lives <= 0 {
				sess.GameOver = true
				sess.WonGame = false
			}
			return
		}
	}

	// Gem pickup.
	if sess.DisplayGem && player.Col == gem.Col && player.Row == gem.Row {
		sess.Score += ScoreGem
		gem.Collect()
	}

	// Water row: the pedestal cell rescues the princess, any other cell
	// scores a crossing and snaps the player back to spawn.
	if player.Row == b.WaterRow {
		if player.Col == b.PedestalCol {
			sess.GameOver = true
			sess.WonGame = true
			return
		}
		sess.Score += ScoreCrossing
		player.Reset()
	}
}
