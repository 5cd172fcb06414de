package main

import (
	"flag"
	"io/fs"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/minwoo-choi/crossing/internal/application/game"
	"github.com/minwoo-choi/crossing/internal/application/replay"
	"github.com/minwoo-choi/crossing/internal/application/scene/playing"
	"github.com/minwoo-choi/crossing/internal/application/system"
	"github.com/minwoo-choi/crossing/internal/domain/session"
	"github.com/minwoo-choi/crossing/internal/infrastructure/assets"
	"github.com/minwoo-choi/crossing/internal/infrastructure/config"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recorded file headless and print the outcome")
	settingsFlag := flag.String("settings", "settings.toml", "Path to optional user settings")
	flag.Parse()

	// Load configurations from the embedded filesystem.
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatal("failed to get config subfs", "err", err)
	}
	cfg, err := config.NewFSLoader(fsys).LoadAll()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	settings, err := config.LoadSettings(*settingsFlag)
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	settings.Apply(cfg)

	if *replayFlag != "" {
		runReplay(cfg, *replayFlag)
		return
	}

	// Load sprites before the loop starts; no frame is rendered until
	// every image is resident.
	assetRoot, err := fs.Sub(assetFS, "assets")
	if err != nil {
		log.Fatal("failed to get asset subfs", "err", err)
	}
	cache := assets.NewCache(log.Default())
	handle := cache.Load(assetRoot, spritePaths(cfg.Board))
	if err := handle.Await(); err != nil {
		log.Fatal("failed to load assets", "err", err)
	}

	seed := time.Now().UnixNano()
	rng := rand.New(rand.NewSource(seed))
	sess := session.New(cfg.Board.DefaultLives)
	world := system.BuildWorld(cfg.Board, cache, sess, rng)

	clock := system.NewClock(time.Now())
	scene := playing.New(cfg.Display, world.Board, cache, sess, world.Roster, world.Player, clock, rng, seed, *recordFlag)
	scene.Collide = func() { world.Collide(sess) }

	g := game.New(scene, clock, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("game terminated", "err", err)
	}
}

func runReplay(cfg *config.GameConfig, path string) {
	data, err := replay.Load(path)
	if err != nil {
		log.Fatal("failed to load replay", "err", err)
	}

	result, err := replay.Run(cfg.Board, data)
	if err != nil {
		log.Fatal("replay failed", "err", err)
	}

	log.Info("replay finished",
		"frames", result.Frames,
		"score", result.Score,
		"lives", result.Lives,
		"gameOver", result.GameOver,
		"won", result.WonGame,
	)
}

// spritePaths collects every sprite the board and entities reference.
func spritePaths(cfg *config.BoardConfig) []string {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, img := range cfg.RowImages {
		add(img)
	}
	add(cfg.Sprites.Enemy)
	add(cfg.Sprites.Player)
	add(cfg.Sprites.Princess)
	add(cfg.Sprites.Gem)
	return paths
}
