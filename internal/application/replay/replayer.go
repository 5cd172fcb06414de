// Package replay reruns a recorded session headless: same seed, same
// input frames, same outcome.
package replay

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/minwoo-choi/crossing/internal/application/system"
	"github.com/minwoo-choi/crossing/internal/domain/board"
	"github.com/minwoo-choi/crossing/internal/domain/session"
	"github.com/minwoo-choi/crossing/internal/infrastructure/config"
)

// Result summarizes a finished replay.
type Result struct {
	Frames   int
	Score    int
	Lives    int
	GameOver bool
	WonGame  bool
}

// Load reads replay data from a file.
func Load(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Run replays the recorded frames against a fresh, seeded world built
// from the given board config. No rendering happens; entities are
// updated and the outcome rules applied exactly as in live play.
func Run(cfg *config.BoardConfig, data *Data) (*Result, error) {
	if data.Version != "1.0" {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	rng := rand.New(rand.NewSource(data.Seed))
	sess := session.New(data.Lives)
	sess.Intro = false

	world := system.BuildWorld(cfg, nil, sess, rng)

	for _, f := range data.Frames {
		if sess.GameOver {
			break
		}
		world.Player.SetIntent(board.Direction(f.Dir))
		world.Roster.Update(f.Dt)
		world.Collide(sess)
	}

	return &Result{
		Frames:   len(data.Frames),
		Score:    sess.Score,
		Lives:    sess.Lives,
		GameOver: sess.GameOver,
		WonGame:  sess.WonGame,
	}, nil
}
