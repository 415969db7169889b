package world

import "sort"

// Phase names a point in the turn lifecycle at which room handlers may run.
type Phase int

const (
	PhaseEnter Phase = iota
	PhaseLook
	PhaseBeginTurn
	PhaseEndTurn
	PhaseFlash
	PhaseBeginCommand
)

func (p Phase) String() string {
	switch p {
	case PhaseEnter:
		return "enter"
	case PhaseLook:
		return "look"
	case PhaseBeginTurn:
		return "begin-turn"
	case PhaseEndTurn:
		return "end-turn"
	case PhaseFlash:
		return "flash"
	case PhaseBeginCommand:
		return "begin-command"
	default:
		return "unknown"
	}
}

// Priority orders handlers within a phase. Higher runs first; registration
// order breaks ties.
type Priority int

const (
	PriorityLow      Priority = 10
	PriorityNormal   Priority = 20
	PriorityHigh     Priority = 30
	PriorityCritical Priority = 40
)

// Handler is a phase callback. Returning true means output was produced and
// no further handlers in the chain should run this invocation.
type Handler func(ctx *ActionContext) bool

// ActionContext is the explicit context passed to phase handlers, event
// actions and exit scripts.
type ActionContext struct {
	World *World
	Room  *Room
	Actor *Player
	// Command is the pending command during the begin-command phase, nil in
	// every other phase.
	Command *Command
	Out     Sink
}

// Print appends a line of narrative output.
func (ctx *ActionContext) Print(line string) {
	if ctx.Out != nil {
		ctx.Out.Print(line)
	}
}

type handlerEntry struct {
	priority Priority
	seq      int
	fn       Handler
}

// Handle registers a handler for a phase at the given priority.
func (r *Room) Handle(p Phase, pri Priority, fn Handler) {
	if r.handlers == nil {
		r.handlers = make(map[Phase][]handlerEntry)
	}
	r.handlerSeq++
	r.handlers[p] = append(r.handlers[p], handlerEntry{priority: pri, seq: r.handlerSeq, fn: fn})
}

// ExecutePhase runs the room's handlers for a phase from highest to lowest
// priority. The first handler returning true stops the chain; the result
// reports whether any handler did.
func (r *Room) ExecutePhase(p Phase, ctx *ActionContext) bool {
	chain := r.handlers[p]
	if len(chain) == 0 {
		return false
	}
	ordered := make([]handlerEntry, len(chain))
	copy(ordered, chain)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].priority > ordered[j].priority
	})
	for _, h := range ordered {
		if h.fn(ctx) {
			return true
		}
	}
	return false
}
