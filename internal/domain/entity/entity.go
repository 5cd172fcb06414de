// Package entity implements the game objects driven by the core loop:
// lane enemies, the player, the princess, and the collectible gem.
//
// The core never inspects concrete entity types. It dispatches through
// the Entity interface and reads outcomes off the shared session state.
package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/minwoo-choi/crossing/internal/domain/board"
)

// Entity is the capability set the core loop requires of every game
// object: advance by a time delta and draw itself.
type Entity interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
}

// Resetter is implemented by entities that return to a starting state
// when a session restarts.
type Resetter interface {
	Reset()
}

// Steerable is implemented by the entity that receives directional
// input, so the scene can route key presses without knowing its type.
type Steerable interface {
	SetIntent(dir board.Direction)
}

// Roster is the live entity set. Enemies keep their insertion order;
// order affects draw layering only.
type Roster struct {
	enemies  []Entity
	player   Entity
	princess Entity
	gem      Entity
}

// NewRoster assembles the fixed entity set for a session.
func NewRoster(enemies []Entity, player, princess, gem Entity) *Roster {
	return &Roster{
		enemies:  enemies,
		player:   player,
		princess: princess,
		gem:      gem,
	}
}

// Update advances every entity: enemies in order, then player, then
// princess, then gem.
func (r *Roster) Update(dt float64) {
	for _, e := range r.enemies {
		e.Update(dt)
	}
	r.player.Update(dt)
	r.princess.Update(dt)
	r.gem.Update(dt)
}

// Drawables returns the entities in back-to-front draw order. The gem is
// included only when visible.
func (r *Roster) Drawables(displayGem bool) []Entity {
	out := make([]Entity, 0, len(r.enemies)+3)
	out = append(out, r.enemies...)
	out = append(out, r.player, r.princess)
	if displayGem {
		out = append(out, r.gem)
	}
	return out
}

// Reset returns every resettable entity to its starting state.
func (r *Roster) Reset() {
	for _, e := range r.Drawables(true) {
		if res, ok := e.(Resetter); ok {
			res.Reset()
		}
	}
}
