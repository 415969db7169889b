// Package scope decides what an actor can perceive: whether a room is lit,
// and which entities a command may legally reference from it.
package scope

import (
	"github.com/jwebster45206/fiction-engine/pkg/world"
)

// Resolver computes lighting and parser candidate sets against a world.
type Resolver struct {
	w *world.World
}

// NewResolver creates a resolver for a world.
func NewResolver(w *world.World) *Resolver {
	return &Resolver{w: w}
}

// seeThrough reports whether an entity exposes its contents: open or
// transparent containers, and surfaces, which have nothing to close.
func seeThrough(e *world.Entity) bool {
	return e.HasFlag(world.FlagOpen) ||
		e.HasFlag(world.FlagTransparent) ||
		e.HasFlag(world.FlagSurface)
}

// IsLit reports whether the room is lit for the observer: naturally lit, or
// holding at least one switched-on light source reachable through open or
// transparent containers, including the observer's own inventory. A light
// inside a closed opaque container does not count.
func (r *Resolver) IsLit(room *world.Room, observer *world.Player) bool {
	if room == nil {
		return false
	}
	if room.HasFlag(world.FlagLit) {
		return true
	}
	if observer != nil && hasActiveLight(observer.Inventory()) {
		return true
	}
	return hasActiveLight(room.Contents())
}

func hasActiveLight(entities []*world.Entity) bool {
	for _, e := range entities {
		if e.HasFlag(world.FlagLightSource) && e.HasFlag(world.FlagOn) {
			return true
		}
		if seeThrough(e) && hasActiveLight(e.Contents()) {
			return true
		}
	}
	return false
}

// Candidates returns the entities the parser may bind noun phrases to: the
// observer's inventory, the room's contents (recursing through chains of
// open or transparent containers), global objects, and the room's
// local-globals. The observer itself is never a candidate. In a dark room
// the set is empty; meta commands never consult it.
func (r *Resolver) Candidates(room *world.Room, observer *world.Player) []*world.Entity {
	if room == nil || !r.IsLit(room, observer) {
		return nil
	}

	seen := make(map[*world.Entity]bool)
	var out []*world.Entity
	add := func(e *world.Entity) {
		if observer != nil && e == &observer.Entity {
			return
		}
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}

	var collect func(entities []*world.Entity)
	collect = func(entities []*world.Entity) {
		for _, e := range entities {
			add(e)
			if seeThrough(e) {
				collect(e.Contents())
			}
		}
	}

	if observer != nil {
		collect(observer.Inventory())
	}
	collect(room.Contents())
	for _, g := range r.w.Globals() {
		add(g)
	}
	for _, g := range room.LocalGlobals() {
		add(g)
	}
	return out
}
