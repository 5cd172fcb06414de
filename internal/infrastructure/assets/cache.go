// Package assets loads sprite images ahead of the game loop and serves
// them by key afterwards.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Cache decodes images once and answers synchronous lookups afterwards.
// Get must only be called after the load handle's Await has returned.
type Cache struct {
	images map[string]*ebiten.Image
	logger *log.Logger
}

// Handle tracks an in-flight load. Await blocks the bootstrap until all
// images are resident; the frame loop is never started before that.
type Handle struct {
	done chan struct{}
	err  error
}

// Await blocks until the load completes and returns its error, if any.
func (h *Handle) Await() error {
	<-h.done
	return h.err
}

// NewCache creates an empty cache.
func NewCache(logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		images: make(map[string]*ebiten.Image),
		logger: logger,
	}
}

// Load starts decoding the given files from fsys. The key of each image
// is its file basename. Decoding runs off the caller's goroutine.
func (c *Cache) Load(fsys fs.FS, paths []string) *Handle {
	h := &Handle{done: make(chan struct{})}

	go func() {
		defer close(h.done)
		for _, p := range paths {
			img, err := decode(fsys, p)
			if err != nil {
				h.err = fmt.Errorf("load %s: %w", p, err)
				return
			}
			c.images[path.Base(p)] = img
		}
		c.logger.Info("assets loaded", "count", len(paths))
	}()

	return h
}

// Get returns the image for a key. It panics on a missing key: a lookup
// before Await or with an unloaded key is a wiring bug, not a runtime
// condition to recover from.
func (c *Cache) Get(key string) *ebiten.Image {
	img, ok := c.images[key]
	if !ok {
		panic(fmt.Sprintf("assets: %q not loaded", key))
	}
	return img
}

// Has reports whether a key is resident.
func (c *Cache) Has(key string) bool {
	_, ok := c.images[key]
	return ok
}

func decode(fsys fs.FS, p string) (*ebiten.Image, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(src), nil
}
