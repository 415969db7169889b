package world

import "fmt"

// ContainmentError reports an attempted containment cycle. It signals a
// programming error in game content, not a user-facing condition.
type ContainmentError struct {
	Entity string // ID of the entity being moved
	Dest   string // ID of the destination
}

func (e *ContainmentError) Error() string {
	return fmt.Sprintf("cannot move %q into %q: would create a containment cycle", e.Entity, e.Dest)
}

// Entity is a node in the world graph: a thing, a room or a person.
// Containment is a tree; the location pointer is authoritative and the
// contents list is derived from it, with both mutated only by MoveTo and
// Remove.
type Entity struct {
	ID          string
	Name        string
	Description string

	flags    map[Flag]struct{}
	state    map[string]StateValue
	location *Entity
	contents []*Entity
	room     *Room // set when this entity is a room
}

// NewEntity creates an unplaced entity with the given initial flags.
func NewEntity(id, name, description string, flags ...Flag) *Entity {
	e := &Entity{
		ID:          id,
		Name:        name,
		Description: description,
		flags:       make(map[Flag]struct{}),
		state:       make(map[string]StateValue),
	}
	for _, f := range flags {
		e.flags[f] = struct{}{}
	}
	return e
}

// Location returns the entity's container, or nil when unplaced.
func (e *Entity) Location() *Entity {
	return e.location
}

// Contents returns a copy of the directly contained entities, in insertion
// order.
func (e *Entity) Contents() []*Entity {
	out := make([]*Entity, len(e.contents))
	copy(out, e.contents)
	return out
}

// Contains reports whether other is inside e, directly or transitively.
func (e *Entity) Contains(other *Entity) bool {
	if other == nil {
		return false
	}
	for p := other.location; p != nil; p = p.location {
		if p == e {
			return true
		}
	}
	return false
}

// MoveTo detaches the entity from its current container and appends it to
// dst's contents. A nil dst unplaces the entity. Moving an entity into
// itself or into one of its own descendants fails with a ContainmentError
// and leaves the graph untouched.
func (e *Entity) MoveTo(dst *Entity) error {
	if dst == nil {
		e.Remove()
		return nil
	}
	if dst == e || e.Contains(dst) {
		return &ContainmentError{Entity: e.ID, Dest: dst.ID}
	}
	e.Remove()
	e.location = dst
	dst.contents = append(dst.contents, e)
	return nil
}

// Remove detaches the entity from its container, leaving it unplaced.
func (e *Entity) Remove() {
	if e.location == nil {
		return
	}
	held := e.location.contents
	for i, c := range held {
		if c == e {
			e.location.contents = append(held[:i], held[i+1:]...)
			break
		}
	}
	e.location = nil
}

// HasFlag reports whether the flag is set.
func (e *Entity) HasFlag(f Flag) bool {
	_, ok := e.flags[f]
	return ok
}

// SetFlag sets one or more flags.
func (e *Entity) SetFlag(flags ...Flag) {
	for _, f := range flags {
		e.flags[f] = struct{}{}
	}
}

// ClearFlag clears one or more flags.
func (e *Entity) ClearFlag(flags ...Flag) {
	for _, f := range flags {
		delete(e.flags, f)
	}
}

// Flags returns the set flags in unspecified order.
func (e *Entity) Flags() []Flag {
	out := make([]Flag, 0, len(e.flags))
	for f := range e.flags {
		out = append(out, f)
	}
	return out
}

// SetState stores an auxiliary value under key, replacing any previous value.
func (e *Entity) SetState(key string, v StateValue) {
	e.state[key] = v
}

// State returns the auxiliary value for key.
func (e *Entity) State(key string) (StateValue, bool) {
	v, ok := e.state[key]
	return v, ok
}

// ClearState removes the auxiliary value for key.
func (e *Entity) ClearState(key string) {
	delete(e.state, key)
}

// StateKeys returns all auxiliary state keys in unspecified order.
func (e *Entity) StateKeys() []string {
	out := make([]string, 0, len(e.state))
	for k := range e.state {
		out = append(out, k)
	}
	return out
}

// IntState returns the int stored under key, or 0 when absent or of another
// kind. The second result reports whether an int was present.
func (e *Entity) IntState(key string) (int, bool) {
	v, ok := e.state[key]
	if !ok || v.Kind != StateInt {
		return 0, false
	}
	return v.Int, true
}

// BoolState returns the bool stored under key. Absent keys read as false.
func (e *Entity) BoolState(key string) bool {
	v, ok := e.state[key]
	return ok && v.Kind == StateBool && v.Bool
}

// StringState returns the string stored under key.
func (e *Entity) StringState(key string) (string, bool) {
	v, ok := e.state[key]
	if !ok || v.Kind != StateString {
		return "", false
	}
	return v.Str, true
}

// AsRoom returns the Room this entity backs, or nil for plain entities.
func (e *Entity) AsRoom() *Room {
	return e.room
}

// IsRoom reports whether the entity is a room.
func (e *Entity) IsRoom() bool {
	return e.room != nil
}
