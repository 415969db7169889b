// Package state holds the serializable snapshot of a running game, used by
// the save and restore commands. A snapshot is only meaningful to the world
// that produced it: entities are referenced by the stable IDs assigned at
// construction time.
package state

import (
	"time"

	"github.com/google/uuid"
)

// Value is the JSON form of a tagged auxiliary state value.
type Value struct {
	Kind string     `json:"kind"`
	Int  int        `json:"int,omitempty"`
	Bool bool       `json:"bool,omitempty"`
	Str  string     `json:"str,omitempty"`
	Time *time.Time `json:"time,omitempty"`
	List []string   `json:"list,omitempty"`
}

// EntityState captures the mutable parts of one entity. Contents records
// the entity's children in placement order so a restore reproduces listing
// order, not map-iteration order.
type EntityState struct {
	Location string           `json:"location,omitempty"` // container ID, empty when unplaced
	Contents []string         `json:"contents,omitempty"`
	Flags    []string         `json:"flags,omitempty"`
	State    map[string]Value `json:"state,omitempty"`
}

// EventState captures one scheduled event. Actions are closures and cannot
// be serialized; restore re-attaches by name to events the live world still
// defines.
type EventState struct {
	Name     string `json:"name"`
	Turns    int    `json:"turns"`
	Priority int    `json:"priority"`
}

// GameState is a complete saved game.
type GameState struct {
	ID        uuid.UUID `json:"id"`
	WorldName string    `json:"world_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Outcome    string `json:"outcome"`
	EndMessage string `json:"end_message,omitempty"`
	Score      int    `json:"score"`
	Moves      int    `json:"moves"`

	PlayerRoom   string                 `json:"player_room,omitempty"`
	VisitedRooms []string               `json:"visited_rooms,omitempty"`
	Entities     map[string]EntityState `json:"entities,omitempty"`
	Events       []EventState           `json:"events,omitempty"`
}

// NewGameState creates an empty snapshot for a world.
func NewGameState(worldName string) *GameState {
	return &GameState{
		ID:        uuid.New(),
		WorldName: worldName,
		CreatedAt: time.Now(),
		Entities:  make(map[string]EntityState),
	}
}
