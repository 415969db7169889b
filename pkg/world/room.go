package world

import "sort"

// Exit connects a room to a destination, optionally gated by a condition, a
// key requirement or visibility. Traversal may run a script and may end the
// game (deadly and victory exits).
type Exit struct {
	To        *Room
	Condition func(ctx *ActionContext) bool // nil means always traversable
	Success   string                        // printed on successful traversal
	Failure   string                        // printed when the condition or key check fails
	Hidden    bool                          // not traversable or listed until revealed
	Key       *Entity                       // must be carried by the actor when set
	Script    func(ctx *ActionContext)      // side effect on traversal

	Deadly       bool
	DeathMessage string

	Victory          bool
	VictoryCondition func(ctx *ActionContext) bool // nil means unconditional
	VictoryMessage   string
}

// Reveal makes a hidden exit visible and traversable.
func (x *Exit) Reveal() {
	x.Hidden = false
}

// Open reports whether the exit may be traversed in the given context.
func (x *Exit) Open(ctx *ActionContext) bool {
	if x.Hidden {
		return false
	}
	if x.Key != nil && !ctx.Actor.Contains(x.Key) {
		return false
	}
	if x.Condition != nil && !x.Condition(ctx) {
		return false
	}
	return true
}

// Room is an entity specialization holding exits, phase handler chains and
// room-local global objects.
type Room struct {
	Entity

	exits        map[Direction]*Exit
	handlers     map[Phase][]handlerEntry
	handlerSeq   int
	localGlobals []*Entity
	visited      bool
}

// NewRoom creates a room. Rooms are top-level containers and are never
// placed inside anything.
func NewRoom(id, name, description string, flags ...Flag) *Room {
	r := &Room{
		Entity: Entity{
			ID:          id,
			Name:        name,
			Description: description,
			flags:       make(map[Flag]struct{}),
			state:       make(map[string]StateValue),
		},
		exits: make(map[Direction]*Exit),
	}
	for _, f := range flags {
		r.flags[f] = struct{}{}
	}
	r.Entity.room = r
	return r
}

// SetExit installs (or replaces) the exit in a direction.
func (r *Room) SetExit(d Direction, x *Exit) {
	r.exits[d] = x
}

// Connect creates a plain two-way passage between r and to.
func (r *Room) Connect(d Direction, to *Room) {
	r.exits[d] = &Exit{To: to}
	to.exits[Opposite(d)] = &Exit{To: r}
}

// ConnectOneWay creates a passage with no implied reverse.
func (r *Room) ConnectOneWay(d Direction, to *Room) {
	r.exits[d] = &Exit{To: to}
}

// Exit returns the exit in a direction, if any, including hidden ones.
func (r *Room) Exit(d Direction) (*Exit, bool) {
	x, ok := r.exits[d]
	return x, ok
}

// Directions lists the directions with visible exits, sorted for stable
// output.
func (r *Room) Directions() []Direction {
	out := make([]Direction, 0, len(r.exits))
	for d, x := range r.exits {
		if x.Hidden {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddLocalGlobal makes an entity referenceable from this room without being
// contained in it.
func (r *Room) AddLocalGlobal(e *Entity) {
	r.localGlobals = append(r.localGlobals, e)
}

// LocalGlobals returns the room's local-global entities.
func (r *Room) LocalGlobals() []*Entity {
	out := make([]*Entity, len(r.localGlobals))
	copy(out, r.localGlobals)
	return out
}

// Visited reports whether the player has seen this room's full description.
func (r *Room) Visited() bool {
	return r.visited
}

// MarkVisited records that the room has been described.
func (r *Room) MarkVisited() {
	r.visited = true
}

// ResetVisited clears the visited mark (used by restore and restart).
func (r *Room) ResetVisited() {
	r.visited = false
}
