package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/minwoo-choi/crossing/internal/domain/board"
)

// KeyReleaseFunc reports whether any key was released this frame.
type KeyReleaseFunc func() bool

func anyKeyReleased() bool {
	return len(inpututil.AppendJustReleasedKeys(nil)) > 0
}

// Bridge is a one-shot any-key-up trigger for overlay scenes. It must be
// armed exactly once per scene activation and disarmed inside the
// handling code before the transition runs, so repeated game-over cycles
// never stack triggers.
type Bridge struct {
	release KeyReleaseFunc
	armed   bool
}

// NewBridge creates a bridge polling the real keyboard.
func NewBridge() *Bridge {
	return &Bridge{release: anyKeyReleased}
}

// NewBridgeWithSource creates a bridge with an injected key source.
// Used by tests and the headless replayer.
func NewBridgeWithSource(release KeyReleaseFunc) *Bridge {
	return &Bridge{release: release}
}

// Arm enables the trigger for the current scene activation.
func (b *Bridge) Arm() { b.armed = true }

// Disarm disables the trigger.
func (b *Bridge) Disarm() { b.armed = false }

// Armed reports whether the trigger is live.
func (b *Bridge) Armed() bool { return b.armed }

// Fired reports whether the trigger is live and a key was released this
// frame. The caller is responsible for disarming before transitioning.
func (b *Bridge) Fired() bool {
	return b.armed && b.release()
}

// Input polls the player's movement keys.
type Input struct{}

// NewInput creates an input poller.
func NewInput() *Input {
	return &Input{}
}

// Direction returns the grid direction pressed this frame, DirNone when
// no arrow key was just pressed.
func (i *Input) Direction() board.Direction {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		return board.DirLeft
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		return board.DirUp
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		return board.DirRight
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		return board.DirDown
	}
	return board.DirNone
}
