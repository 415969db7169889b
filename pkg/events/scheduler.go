// Package events implements the turn-indexed scheduler: named, prioritized
// actions that fire once after a number of turns or on every turn until
// dequeued.
package events

import (
	"log/slog"
	"sort"

	"github.com/jwebster45206/fiction-engine/pkg/world"
)

// Recurring is the turns value for events that fire on every turn until
// explicitly dequeued.
const Recurring = -1

// Action runs when an event is due. The result reports whether it produced
// observable output.
type Action func(ctx *world.ActionContext) bool

// GameEvent is one scheduled action.
type GameEvent struct {
	Name     string
	Turns    int // turns remaining; Recurring means every turn
	Priority int // higher fires first; ties by scheduling order
	Action   Action

	seq int
}

// Scheduler holds the active event set for one game. Names are unique;
// scheduling under an existing name replaces it.
type Scheduler struct {
	events map[string]*GameEvent
	seq    int
	firing map[string]bool
	logger *slog.Logger
}

// NewScheduler creates an empty scheduler.
func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		events: make(map[string]*GameEvent),
		logger: logger,
	}
}

// Schedule enqueues an event. turns is the number of Process calls before
// it fires (an event scheduled with N fires on the Nth subsequent call), or
// Recurring. An existing event with the same name is replaced.
func (s *Scheduler) Schedule(name string, turns int, priority int, action Action) {
	s.seq++
	s.events[name] = &GameEvent{
		Name:     name,
		Turns:    turns,
		Priority: priority,
		Action:   action,
		seq:      s.seq,
	}
	s.logger.Debug("event scheduled", "name", name, "turns", turns, "priority", priority)
}

// Dequeue removes an event, reporting whether one was present.
func (s *Scheduler) Dequeue(name string) bool {
	if _, ok := s.events[name]; !ok {
		return false
	}
	delete(s.events, name)
	s.logger.Debug("event dequeued", "name", name)
	return true
}

// IsScheduled reports whether an event with the name is active.
func (s *Scheduler) IsScheduled(name string) bool {
	_, ok := s.events[name]
	return ok
}

// IsRunningThisTurn reports whether the named event's action is being
// dispatched by the Process pass currently on the stack.
func (s *Scheduler) IsRunningThisTurn(name string) bool {
	return s.firing[name]
}

// ActiveEvents returns the names of all active events, sorted. Fired
// one-shot and dequeued events never linger here.
func (s *Scheduler) ActiveEvents() []string {
	out := make([]string, 0, len(s.events))
	for name := range s.events {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Events returns the active events for snapshotting, in scheduling order.
func (s *Scheduler) Events() []*GameEvent {
	out := make([]*GameEvent, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// SetTurns overrides the turns remaining on an active event (used by
// restore). Reports whether the event exists.
func (s *Scheduler) SetTurns(name string, turns int) bool {
	ev, ok := s.events[name]
	if !ok {
		return false
	}
	ev.Turns = turns
	return true
}

// Process runs one turn of event dispatch. Turns remaining decrement once
// per call, before selection, so events scheduled by actions during this
// pass start counting from the next call. Due events run in descending
// priority order, ties by scheduling order; fired one-shots leave the
// active set unless their action rescheduled them. Returns whether any
// fired action reported output.
func (s *Scheduler) Process(ctx *world.ActionContext) bool {
	for _, ev := range s.events {
		if ev.Turns > 0 {
			ev.Turns--
		}
	}

	var due []*GameEvent
	for _, ev := range s.events {
		if ev.Turns == Recurring || ev.Turns <= 0 {
			due = append(due, ev)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].Priority != due[j].Priority {
			return due[i].Priority > due[j].Priority
		}
		return due[i].seq < due[j].seq
	})

	output := false
	s.firing = make(map[string]bool)
	for _, ev := range due {
		// An earlier event this pass may have dequeued or replaced it.
		if cur, ok := s.events[ev.Name]; !ok || cur != ev {
			continue
		}
		s.firing[ev.Name] = true
		if ev.Action != nil && ev.Action(ctx) {
			output = true
		}
		delete(s.firing, ev.Name)
		s.logger.Debug("event fired", "name", ev.Name, "recurring", ev.Turns == Recurring)

		if ev.Turns != Recurring {
			if cur, ok := s.events[ev.Name]; ok && cur == ev {
				delete(s.events, ev.Name)
			}
		}
	}
	s.firing = nil
	return output
}
