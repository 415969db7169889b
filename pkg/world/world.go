package world

import (
	"fmt"
	"sort"
)

// Outcome is the terminal state of a game.
type Outcome string

const (
	OutcomePlaying Outcome = "playing"
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
)

// World is the registry of every entity and room, the global-object lists,
// the player, and the game outcome. It is built once by a world constructor
// and then mutated only by command execution and handlers on a single call
// stack.
type World struct {
	Name string

	entities map[string]*Entity
	rooms    map[string]*Room
	globals  []*Entity
	player   *Player

	outcome    Outcome
	endMessage string
	score      int
}

// New creates an empty world.
func New(name string) *World {
	return &World{
		Name:     name,
		entities: make(map[string]*Entity),
		rooms:    make(map[string]*Room),
		outcome:  OutcomePlaying,
	}
}

// Add registers an entity by ID.
func (w *World) Add(e *Entity) error {
	if _, exists := w.entities[e.ID]; exists {
		return fmt.Errorf("entity %q already registered", e.ID)
	}
	w.entities[e.ID] = e
	return nil
}

// AddRoom registers a room by ID.
func (w *World) AddRoom(r *Room) error {
	if err := w.Add(&r.Entity); err != nil {
		return err
	}
	w.rooms[r.ID] = r
	return nil
}

// Entity looks up an entity by ID.
func (w *World) Entity(id string) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Room looks up a room by ID.
func (w *World) Room(id string) (*Room, bool) {
	r, ok := w.rooms[id]
	return r, ok
}

// EntityIDs returns all registered IDs, sorted.
func (w *World) EntityIDs() []string {
	out := make([]string, 0, len(w.entities))
	for id := range w.entities {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Rooms returns all rooms in ID order.
func (w *World) Rooms() []*Room {
	ids := make([]string, 0, len(w.rooms))
	for id := range w.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*Room, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.rooms[id])
	}
	return out
}

// AddGlobal makes an entity referenceable from every room. Globals are not
// part of any room's contents.
func (w *World) AddGlobal(e *Entity) {
	w.globals = append(w.globals, e)
}

// Globals returns the global entities.
func (w *World) Globals() []*Entity {
	out := make([]*Entity, len(w.globals))
	copy(out, w.globals)
	return out
}

// SetPlayer registers the acting player. The player entity joins the
// registry like everything else.
func (w *World) SetPlayer(p *Player) error {
	if err := w.Add(&p.Entity); err != nil {
		return err
	}
	w.player = p
	return nil
}

// Player returns the acting player.
func (w *World) Player() *Player {
	return w.player
}

// Win ends the game in victory. The first terminal transition sticks.
func (w *World) Win(message string) {
	if w.outcome != OutcomePlaying {
		return
	}
	w.outcome = OutcomeWon
	w.endMessage = message
}

// Lose ends the game in defeat. The first terminal transition sticks.
func (w *World) Lose(message string) {
	if w.outcome != OutcomePlaying {
		return
	}
	w.outcome = OutcomeLost
	w.endMessage = message
}

// Outcome returns the current game outcome.
func (w *World) Outcome() Outcome {
	return w.outcome
}

// Finished reports whether the game has reached a terminal state.
func (w *World) Finished() bool {
	return w.outcome != OutcomePlaying
}

// EndMessage returns the closing message set by Win or Lose.
func (w *World) EndMessage() string {
	return w.endMessage
}

// AddScore adjusts the score.
func (w *World) AddScore(n int) {
	w.score += n
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}
