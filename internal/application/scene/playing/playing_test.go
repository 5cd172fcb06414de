package playing

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/minwoo-choi/crossing/internal/application/replay"
	"github.com/minwoo-choi/crossing/internal/application/system"
	"github.com/minwoo-choi/crossing/internal/domain/board"
	"github.com/minwoo-choi/crossing/internal/domain/entity"
	"github.com/minwoo-choi/crossing/internal/domain/session"
	"github.com/minwoo-choi/crossing/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoardConfig() *config.BoardConfig {
	return &config.BoardConfig{
		Rows:       7,
		Cols:       7,
		TileWidth:  101,
		TileHeight: 83,
		RowImages: []string{
			"water-block.png",
			"stone-block.png", "stone-block.png", "stone-block.png", "stone-block.png",
			"grass-block.png", "grass-block.png",
			"pedestal.png",
		},
		Pedestal:      config.PedestalConfig{X: 303, Y: 0, Col: 3},
		WaterRow:      0,
		FirstLane:     1,
		LastLane:      4,
		PlayerSpawn:   config.CellConfig{Col: 3, Row: 6},
		SpriteYOffset: 23,
		Lanes:         config.LaneConfig{MinSpeed: 80, MaxSpeed: 320, Count: 4},
		Sprites: config.SpriteConfig{
			Enemy:    "enemy-bug.png",
			Player:   "char-boy.png",
			Princess: "char-princess-girl.png",
			Gem:      "gem-orange.png",
		},
		DefaultLives: 3,
	}
}

type sceneHarness struct {
	scene *Scene
	sess  *session.State
	world *system.World
	keyUp bool
	dir   board.Direction
	now   time.Time
}

func newHarness(t *testing.T) *sceneHarness {
	t.Helper()

	cfg := testBoardConfig()
	sess := session.New(3)
	rng := rand.New(rand.NewSource(1))
	world := system.BuildWorld(cfg, nil, sess, rng)

	display := &config.DisplayConfig{ScreenWidth: 707, ScreenHeight: 706, Framerate: 60}
	clock := system.NewClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s := New(display, world.Board, nil, sess, world.Roster, world.Player, clock, rng, 1, "")

	h := &sceneHarness{scene: s, sess: sess, world: world,
		now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s.bridge = system.NewBridgeWithSource(func() bool { return h.keyUp })
	s.direction = func() board.Direction { return h.dir }
	s.now = func() time.Time { return h.now }
	return h
}

func (h *sceneHarness) tick(t *testing.T, dt float64) {
	t.Helper()
	next, err := h.scene.Update(dt)
	require.NoError(t, err)
	require.Nil(t, next, "the arcade scene never swaps itself out")
}

func TestScene_IntroEnterActionRunsOnce(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.sess.Intro)

	for i := 0; i < 10; i++ {
		h.tick(t, 0.016)
	}

	assert.True(t, h.scene.introShown, "enter-action ran")
	assert.True(t, h.scene.bridge.Armed(), "trigger armed exactly once and still live")
	assert.True(t, h.sess.Intro, "no key, no transition")
}

func TestScene_IntroKeyCannotRaceEnterAction(t *testing.T) {
	h := newHarness(t)
	h.keyUp = true

	// First tick is the enter-action; the trigger arms after it, so
	// even a simultaneous key release cannot transition yet.
	h.tick(t, 0.016)
	assert.True(t, h.sess.Intro)

	h.tick(t, 0.016)
	assert.False(t, h.sess.Intro, "key release on a later frame transitions")
}

func TestScene_IntroToPlaying(t *testing.T) {
	h := newHarness(t)

	h.tick(t, 0.016) // enter-action
	h.keyUp = true
	h.tick(t, 0.016) // key fires

	assert.False(t, h.sess.Intro)
	assert.False(t, h.scene.bridge.Armed(), "trigger removed with the transition")
	assert.False(t, h.scene.introShown, "next intro activation re-displays")

	// Next frame is a playing frame: input reaches the player.
	h.keyUp = false
	h.dir = board.DirUp
	h.tick(t, 0.016)
	assert.Equal(t, 5, h.world.Player.Row)
}

func TestScene_GameOverPrecedesIntro(t *testing.T) {
	h := newHarness(t)
	h.sess.Intro = true
	h.sess.GameOver = true

	h.tick(t, 0.016)

	assert.True(t, h.scene.gameOverShown, "game over enter-action fired")
	assert.False(t, h.scene.introShown, "intro enter-action suppressed")
}

func TestScene_GameOverResetWithinOneTick(t *testing.T) {
	h := newHarness(t)
	h.sess.Intro = false
	h.sess.Lives = 0
	h.sess.Score = 850
	h.sess.GameOver = true
	h.world.Player.Row = 2

	h.tick(t, 0.016) // enter-action
	h.keyUp = true
	h.tick(t, 0.016) // key fires: reset happens inside this tick

	assert.False(t, h.sess.GameOver)
	assert.Equal(t, 3, h.sess.Lives)
	assert.Equal(t, 0, h.sess.Score)
	assert.Equal(t, 6, h.world.Player.Row, "player back at spawn")
	assert.False(t, h.scene.gameOverShown, "next activation re-displays")
}

func TestScene_RepeatedGameOverCyclesNoDuplicateTriggers(t *testing.T) {
	h := newHarness(t)
	h.sess.Intro = false

	for cycle := 0; cycle < 3; cycle++ {
		h.sess.GameOver = true
		h.keyUp = false
		h.tick(t, 0.016) // enter-action
		h.keyUp = true
		h.tick(t, 0.016) // reset

		assert.False(t, h.sess.GameOver)
		assert.False(t, h.scene.bridge.Armed(), "cycle %d left a live trigger", cycle)

		// A playing frame with the key still released must not
		// re-trigger anything.
		h.tick(t, 0.016)
		assert.False(t, h.sess.GameOver)
	}
}

func TestScene_WinFlagSelectsGameOverBranch(t *testing.T) {
	h := newHarness(t)
	h.sess.Intro = false

	// Collaborator logic ends the game with a win mid-play.
	h.tick(t, 0.016)
	h.sess.GameOver = true
	h.sess.WonGame = true

	h.tick(t, 0.016)
	assert.True(t, h.scene.gameOverShown)
	assert.True(t, h.sess.WonGame, "win flag intact for the overlay text")
}

func TestScene_PlayingRunsCollideHookAfterUpdates(t *testing.T) {
	h := newHarness(t)
	h.sess.Intro = false

	var order []string
	h.scene.Collide = func() { order = append(order, "collide") }

	startX := h.world.Enemies[0].X
	h.tick(t, 0.5)

	assert.Equal(t, []string{"collide"}, order)
	assert.Greater(t, h.world.Enemies[0].X, startX, "entity updates ran before the hook")
}

func TestScene_PlayingWithoutCollideHook(t *testing.T) {
	h := newHarness(t)
	h.sess.Intro = false

	assert.NotPanics(t, func() { h.tick(t, 0.016) })
}

func TestScene_ResetReseedsClock(t *testing.T) {
	h := newHarness(t)
	h.sess.Intro = false
	h.sess.GameOver = true

	h.tick(t, 0.016)
	// Long idle on the overlay before the key press.
	h.now = h.now.Add(45 * time.Second)
	h.keyUp = true
	h.tick(t, 0.016)

	dt := h.scene.clock.Tick(h.now.Add(16 * time.Millisecond))
	assert.InDelta(t, 0.016, dt, 1e-9, "idle time on the overlay is discarded")
}

// record enables recording on an existing harness, the way New does
// when given a record path.
func (h *sceneHarness) record(t *testing.T, path string) {
	t.Helper()
	h.scene.recordPath = path
	h.scene.recorder = NewRecorder(1, h.sess.Lives)
	h.scene.sessionIndex = 1
}

func TestScene_ResetRebuildsWorldFromRecordedSeed(t *testing.T) {
	h := newHarness(t)
	h.record(t, filepath.Join(t.TempDir(), "replay.json"))
	h.sess.Intro = false

	h.dir = board.DirUp
	h.tick(t, 0.016)
	h.dir = board.DirNone

	h.sess.GameOver = true
	h.tick(t, 0.016) // enter-action saves the first session
	h.keyUp = true
	h.tick(t, 0.016) // reset into a fresh session

	seed := h.scene.recorder.Data().Seed
	require.NotEqual(t, int64(1), seed, "restarted session records its own seed")

	// A replay rebuilds the world from the recorded seed; the live
	// world after the reset must match it.
	expected := system.BuildWorld(testBoardConfig(), nil, session.New(3),
		rand.New(rand.NewSource(seed)))
	for i, e := range h.world.Enemies {
		require.Equal(t, expected.Enemies[i].Speed, e.Speed, "enemy %d speed", i)
	}
	assert.Equal(t, expected.Gem.Col, h.world.Gem.Col)
	assert.Equal(t, expected.Gem.Row, h.world.Gem.Row)
}

func TestScene_RecordingSessionsGetOwnFiles(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	h.record(t, filepath.Join(dir, "replay.json"))
	h.sess.Intro = false

	h.tick(t, 0.016)
	h.sess.GameOver = true
	h.tick(t, 0.016) // saves session one

	h.keyUp = true
	h.now = h.now.Add(5 * time.Second)
	h.tick(t, 0.016) // reset
	h.keyUp = false

	h.tick(t, 0.016)
	h.sess.GameOver = true
	h.tick(t, 0.016) // saves session two

	first, err := replay.Load(filepath.Join(dir, "replay.json"))
	require.NoError(t, err)
	second, err := replay.Load(filepath.Join(dir, "replay-2.json"))
	require.NoError(t, err, "second session saved to its own file")
	assert.Equal(t, int64(1), first.Seed)
	assert.NotEqual(t, first.Seed, second.Seed)
}

type paintRecorder struct {
	name  string
	trace *[]string
}

func (p *paintRecorder) Update(float64)     {}
func (p *paintRecorder) Draw(*ebiten.Image) { *p.trace = append(*p.trace, p.name) }

func TestScene_DrawPlayingOrder(t *testing.T) {
	h := newHarness(t)
	h.sess.Intro = false

	var trace []string
	enemies := []entity.Entity{
		&paintRecorder{name: "enemy0", trace: &trace},
		&paintRecorder{name: "enemy1", trace: &trace},
	}
	h.scene.roster = entity.NewRoster(enemies,
		&paintRecorder{name: "player", trace: &trace},
		&paintRecorder{name: "princess", trace: &trace},
		&paintRecorder{name: "gem", trace: &trace})
	h.scene.paintBoard = func(*ebiten.Image) { trace = append(trace, "board") }
	h.scene.paintHUD = func(*ebiten.Image) { trace = append(trace, "hud") }

	screen := ebiten.NewImage(707, 706)
	h.scene.Draw(screen)

	assert.Equal(t,
		[]string{"board", "enemy0", "enemy1", "player", "princess", "gem", "hud"},
		trace, "tiles first, entities back to front, HUD on top")

	trace = nil
	h.sess.DisplayGem = false
	h.scene.Draw(screen)
	assert.Equal(t,
		[]string{"board", "enemy0", "enemy1", "player", "princess", "hud"},
		trace, "hidden gem is never drawn")
}

func TestScene_DrawOverlaySelection(t *testing.T) {
	tests := []struct {
		name     string
		intro    bool
		gameOver bool
		want     string
	}{
		{"intro", true, false, "intro"},
		{"game over", false, true, "game over"},
		{"game over outranks intro", true, true, "game over"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.sess.Intro = tt.intro
			h.sess.GameOver = tt.gameOver

			var trace []string
			h.scene.paintBoard = func(*ebiten.Image) { trace = append(trace, "board") }
			h.scene.paintIntro = func(*ebiten.Image) { trace = append(trace, "intro") }
			h.scene.paintGameOver = func(*ebiten.Image) { trace = append(trace, "game over") }

			h.scene.Draw(ebiten.NewImage(707, 706))

			assert.Equal(t, []string{tt.want}, trace, "overlay replaces the playing frame")
		})
	}
}
