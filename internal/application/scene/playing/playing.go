// Package playing provides the arcade scene: the tile board, the live
// entity set, and the intro/game-over overlays driven by session flags.
package playing

import (
	"fmt"
	"image/color"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/minwoo-choi/crossing/internal/application/scene"
	"github.com/minwoo-choi/crossing/internal/application/state"
	"github.com/minwoo-choi/crossing/internal/application/system"
	"github.com/minwoo-choi/crossing/internal/domain/board"
	"github.com/minwoo-choi/crossing/internal/domain/entity"
	"github.com/minwoo-choi/crossing/internal/domain/session"
	"github.com/minwoo-choi/crossing/internal/infrastructure/assets"
	"github.com/minwoo-choi/crossing/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorHUD       = color.RGBA{255, 255, 255, 255}
	colorIntroBG   = color.RGBA{20, 24, 48, 255}
	colorWinBG     = color.RGBA{12, 72, 40, 255}
	colorLoseBG    = color.RGBA{72, 12, 12, 255}
	colorOverlayFG = color.RGBA{240, 240, 240, 255}
)

const hudY = 40.0

// Scene is the single arcade scene. Each tick it resolves the session
// flags into a phase (game over before intro before playing) and runs
// that phase's behavior.
type Scene struct {
	display *config.DisplayConfig
	board   *board.Board
	cache   *assets.Cache
	session *session.State
	roster  *entity.Roster
	steer   entity.Steerable
	clock   *system.Clock
	rng     *rand.Rand

	bridge    *system.Bridge
	direction func() board.Direction
	now       func() time.Time

	face          text.Face
	paintBoard    func(screen *ebiten.Image)
	paintHUD      func(screen *ebiten.Image)
	paintIntro    func(screen *ebiten.Image)
	paintGameOver func(screen *ebiten.Image)

	introShown    bool
	gameOverShown bool

	// Collide, when set, runs the collaborator outcome rules after each
	// update pass. The scene itself performs no collision detection.
	Collide func()

	recorder     *Recorder
	recordPath   string
	sessionIndex int
}

// New creates the playing scene. The rng must be the one the roster's
// entities were built from; seed is the value it was seeded with. If
// recordPath is not empty, gameplay input is recorded for later replay.
func New(display *config.DisplayConfig, b *board.Board, cache *assets.Cache, sess *session.State,
	roster *entity.Roster, steer entity.Steerable, clock *system.Clock,
	rng *rand.Rand, seed int64, recordPath string) *Scene {

	input := system.NewInput()
	s := &Scene{
		display:    display,
		board:      b,
		cache:      cache,
		session:    sess,
		roster:     roster,
		steer:      steer,
		clock:      clock,
		rng:        rng,
		bridge:     system.NewBridge(),
		direction:  input.Direction,
		now:        time.Now,
		face:       text.NewGoXFace(basicfont.Face7x13),
		recordPath: recordPath,
	}
	s.paintBoard = s.drawBoard
	s.paintHUD = s.drawHUD
	s.paintIntro = s.drawIntroOverlay
	s.paintGameOver = s.drawGameOverOverlay

	if recordPath != "" {
		s.recorder = NewRecorder(seed, sess.Lives)
		s.sessionIndex = 1
		log.Info("recording enabled", "path", recordPath, "seed", seed)
	}

	return s
}

// Update runs one tick of the scene's phase machine (implements
// scene.Scene). It never transitions to another scene; the phases live
// inside this one.
func (s *Scene) Update(dt float64) (scene.Scene, error) {
	switch state.Resolve(s.session.GameOver, s.session.Intro) {
	case state.PhaseGameOver:
		s.updateGameOver()
	case state.PhaseIntro:
		s.updateIntro()
	default:
		s.updatePlaying(dt)
	}
	return nil, nil
}

func (s *Scene) updateIntro() {
	if !s.introShown {
		// Enter-action: runs exactly once per activation. The key
		// trigger is armed only after it, so no press can race it.
		s.introShown = true
		s.bridge.Arm()
		return
	}

	if s.bridge.Fired() {
		s.bridge.Disarm()
		s.introShown = false
		s.session.Intro = false
		s.clock.Seed(s.now())
	}
}

func (s *Scene) updateGameOver() {
	if !s.gameOverShown {
		s.gameOverShown = true
		s.bridge.Arm()
		if s.recorder != nil {
			s.saveRecording()
		}
		return
	}

	if s.bridge.Fired() {
		s.bridge.Disarm()
		s.reset()
	}
}

// reset restores the session defaults and resumes play with a freshly
// seeded clock, all within the same tick the key fired on.
func (s *Scene) reset() {
	s.gameOverShown = false
	s.session.Reset()

	// The rng is reseeded before the roster rebuilds from it, so the
	// seed handed to the recorder reproduces the new entity stream.
	seed := s.now().UnixNano()
	s.rng.Seed(seed)
	s.roster.Reset()
	s.clock.Seed(s.now())

	if s.recordPath != "" {
		s.sessionIndex++
		s.recorder = NewRecorder(seed, s.session.Lives)
	}
}

func (s *Scene) updatePlaying(dt float64) {
	dir := s.direction()
	if s.recorder != nil {
		s.recorder.RecordFrame(dir, dt)
	}
	s.steer.SetIntent(dir)

	s.roster.Update(dt)

	if s.Collide != nil {
		s.Collide()
	}
}

func (s *Scene) saveRecording() {
	if s.recorder == nil {
		return
	}
	path := s.sessionRecordPath()
	if err := s.recorder.Save(path); err != nil {
		log.Error("failed to save recording", "err", err)
	} else {
		log.Info("recording saved", "path", path, "frames", s.recorder.FrameCount())
	}
}

// sessionRecordPath gives each restarted session's recording its own
// file instead of overwriting the first one.
func (s *Scene) sessionRecordPath() string {
	if s.sessionIndex <= 1 {
		return s.recordPath
	}
	ext := filepath.Ext(s.recordPath)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(s.recordPath, ext), s.sessionIndex, ext)
}

// Draw renders the frame (implements scene.Scene). Playing frames paint
// the board, entities back-to-front, then the HUD; the other phases
// paint a full-bleed overlay with their copy.
func (s *Scene) Draw(screen *ebiten.Image) {
	switch state.Resolve(s.session.GameOver, s.session.Intro) {
	case state.PhaseGameOver:
		s.paintGameOver(screen)
	case state.PhaseIntro:
		s.paintIntro(screen)
	default:
		s.paintBoard(screen)
		for _, e := range s.roster.Drawables(s.session.DisplayGem) {
			e.Draw(screen)
		}
		s.paintHUD(screen)
	}
}

func (s *Scene) drawBoard(screen *ebiten.Image) {
	screen.Fill(colorBG)

	for r := 0; r < s.board.Rows; r++ {
		img := s.cache.Get(s.board.RowImages[r])
		for c := 0; c < s.board.Cols; c++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(s.board.PixelX(c), s.board.PixelY(r))
			screen.DrawImage(img, op)
		}
	}

	// Pedestal tile, drawn over the water row.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.board.PedestalX), float64(s.board.PedestalY))
	screen.DrawImage(s.cache.Get(s.board.PedestalSprite()), op)
}

func (s *Scene) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("Lives: %d -- Score: %d", s.session.Lives, s.session.Score)
	s.drawCenteredText(screen, hud, hudY, colorHUD)
}

func (s *Scene) drawIntroOverlay(screen *ebiten.Image) {
	screen.Fill(colorIntroBG)

	th := float64(s.board.TileHeight)
	s.drawCenteredText(screen, "GEM CROSSING", th*2, colorOverlayFG)
	s.drawCenteredText(screen,
		"Use the arrow keys to move.\nCross to the water, grab the gem,\nand reach the princess.\nWatch out for the bugs!",
		th*3, colorOverlayFG)
	s.drawCenteredText(screen, "Press any key to start", th*5, colorOverlayFG)
}

func (s *Scene) drawGameOverOverlay(screen *ebiten.Image) {
	bg, headline := colorLoseBG, "Game Over"
	if s.session.WonGame {
		bg, headline = colorWinBG, "You Win!"
	}
	screen.Fill(bg)

	th := float64(s.board.TileHeight)
	s.drawCenteredText(screen, headline, th*2, colorOverlayFG)
	s.drawCenteredText(screen, fmt.Sprintf("Score: %d", s.session.Score), th*3, colorOverlayFG)
	s.drawCenteredText(screen, "Press any key to play again", th*4, colorOverlayFG)
}

func (s *Scene) drawCenteredText(screen *ebiten.Image, str string, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(s.display.ScreenWidth)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = float64(basicfont.Face7x13.Metrics().Height.Ceil())
	text.Draw(screen, str, s.face, op)
}

// OnEnter is called when entering this scene.
func (s *Scene) OnEnter() {
	// Nothing to do: the intro enter-action runs on the first tick.
}

// OnExit is called when leaving this scene.
func (s *Scene) OnExit() {
	if s.recorder != nil {
		s.saveRecording()
	}
}
