package world

import (
	"fmt"
	"sort"

	"github.com/jwebster45206/fiction-engine/pkg/state"
)

// Capture serializes the mutable world state (entity placement, flags,
// auxiliary state, visited rooms, score and outcome) into a snapshot. Turn
// count and scheduled events are layered on by the engine.
func (w *World) Capture() *state.GameState {
	gs := state.NewGameState(w.Name)
	gs.Outcome = string(w.outcome)
	gs.EndMessage = w.endMessage
	gs.Score = w.score
	if w.player != nil {
		if room := w.player.CurrentRoom(); room != nil {
			gs.PlayerRoom = room.ID
		}
	}

	for id, e := range w.entities {
		es := state.EntityState{}
		if e.location != nil {
			es.Location = e.location.ID
		}
		if len(e.contents) > 0 {
			es.Contents = make([]string, 0, len(e.contents))
			for _, c := range e.contents {
				es.Contents = append(es.Contents, c.ID)
			}
		}
		if len(e.flags) > 0 {
			for f := range e.flags {
				es.Flags = append(es.Flags, string(f))
			}
			sort.Strings(es.Flags)
		}
		if len(e.state) > 0 {
			es.State = make(map[string]state.Value, len(e.state))
			for k, v := range e.state {
				es.State[k] = encodeValue(v)
			}
		}
		gs.Entities[id] = es
	}

	for _, r := range w.Rooms() {
		if r.visited {
			gs.VisitedRooms = append(gs.VisitedRooms, r.ID)
		}
	}
	return gs
}

// Apply restores a snapshot previously captured from this same world.
// Snapshots from a different world are refused.
func (w *World) Apply(gs *state.GameState) error {
	if gs.WorldName != w.Name {
		return fmt.Errorf("snapshot belongs to world %q, not %q", gs.WorldName, w.Name)
	}
	for id := range gs.Entities {
		if _, ok := w.entities[id]; !ok {
			return fmt.Errorf("snapshot references unknown entity %q", id)
		}
	}

	// Detach everything first so placements never pass through a transient
	// cycle.
	for id := range gs.Entities {
		w.entities[id].Remove()
	}

	for id, es := range gs.Entities {
		e := w.entities[id]
		e.flags = make(map[Flag]struct{}, len(es.Flags))
		for _, f := range es.Flags {
			e.flags[Flag(f)] = struct{}{}
		}
		e.state = make(map[string]StateValue, len(es.State))
		for k, v := range es.State {
			e.state[k] = decodeValue(v)
		}
	}

	// Place children container by container, in the order Capture recorded
	// them, so contents listings survive a round trip unchanged.
	for id, es := range gs.Entities {
		container := w.entities[id]
		for _, childID := range es.Contents {
			child, ok := w.entities[childID]
			if !ok {
				return fmt.Errorf("snapshot lists unknown entity %q inside %q", childID, id)
			}
			if err := child.MoveTo(container); err != nil {
				return fmt.Errorf("restoring %q: %w", childID, err)
			}
		}
	}

	// Snapshots written before contents lists existed carry only locations.
	for id, es := range gs.Entities {
		e := w.entities[id]
		if es.Location == "" || e.location != nil {
			continue
		}
		dst, ok := w.entities[es.Location]
		if !ok {
			return fmt.Errorf("snapshot places %q in unknown entity %q", id, es.Location)
		}
		if err := e.MoveTo(dst); err != nil {
			return fmt.Errorf("restoring %q: %w", id, err)
		}
	}

	for _, r := range w.rooms {
		r.visited = false
	}
	for _, id := range gs.VisitedRooms {
		if r, ok := w.rooms[id]; ok {
			r.visited = true
		}
	}

	w.outcome = Outcome(gs.Outcome)
	if w.outcome == "" {
		w.outcome = OutcomePlaying
	}
	w.endMessage = gs.EndMessage
	w.score = gs.Score
	if w.player != nil {
		// The pronoun referent does not survive a restore.
		w.player.lastMentioned = nil
	}
	return nil
}

func encodeValue(v StateValue) state.Value {
	out := state.Value{Kind: v.Kind.String()}
	switch v.Kind {
	case StateInt:
		out.Int = v.Int
	case StateBool:
		out.Bool = v.Bool
	case StateString:
		out.Str = v.Str
	case StateTime:
		t := v.Time
		out.Time = &t
	case StateList:
		out.List = append([]string(nil), v.List...)
	}
	return out
}

func decodeValue(v state.Value) StateValue {
	switch v.Kind {
	case "int":
		return IntValue(v.Int)
	case "bool":
		return BoolValue(v.Bool)
	case "string":
		return StringValue(v.Str)
	case "time":
		if v.Time != nil {
			return TimeValue(*v.Time)
		}
		return StateValue{Kind: StateTime}
	case "list":
		return ListValue(append([]string(nil), v.List...)...)
	default:
		return StringValue(v.Str)
	}
}
