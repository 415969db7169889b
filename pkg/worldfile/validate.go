package worldfile

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/fiction-engine/pkg/world"
)

// PlayerID is the entity ID reserved for the player in world files.
const PlayerID = "player"

// Validate checks a document for dangling references, duplicate IDs and
// unknown flags or directions. All problems are reported at once.
func Validate(doc *Document) error {
	var errs []string
	report := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if doc.Name == "" {
		report("world name is required")
	}
	if len(doc.Rooms) == 0 {
		report("at least one room is required")
	}

	ids := make(map[string]bool)
	roomIDs := make(map[string]bool)
	objIDs := make(map[string]bool)
	for _, r := range doc.Rooms {
		if r.ID == "" {
			report("room %q has no id", r.Name)
			continue
		}
		if ids[r.ID] {
			report("duplicate id %q", r.ID)
		}
		ids[r.ID] = true
		roomIDs[r.ID] = true
	}
	for _, o := range doc.Objects {
		if o.ID == "" {
			report("object %q has no id", o.Name)
			continue
		}
		if o.ID == PlayerID {
			report("object id %q is reserved", PlayerID)
		}
		if ids[o.ID] {
			report("duplicate id %q", o.ID)
		}
		ids[o.ID] = true
		objIDs[o.ID] = true
	}

	if doc.Start == "" {
		report("start room is required")
	} else if !roomIDs[doc.Start] {
		report("start: no room with id %q", doc.Start)
	}

	for _, r := range doc.Rooms {
		for dir, x := range r.Exits {
			if _, ok := world.ParseDirection(dir); !ok {
				report("rooms[%s]: unknown direction %q", r.ID, dir)
			}
			if x.To == "" {
				// Deadly exits never complete the move, so they may omit a
				// destination.
				if !x.Deadly {
					report("rooms[%s]: exit %s has no destination", r.ID, dir)
				}
			} else if !roomIDs[x.To] {
				report("rooms[%s]: exit %s: no room with id %q", r.ID, dir, x.To)
			}
			if x.Key != "" && !objIDs[x.Key] {
				report("rooms[%s]: exit %s: no object with id %q", r.ID, dir, x.Key)
			}
			if x.Deadly && x.Victory {
				report("rooms[%s]: exit %s: cannot be both deadly and victory", r.ID, dir)
			}
		}
		// Local globals resolve against objects when the world is built, so
		// a room ID here is as dangling as an unknown one. Exit keys above
		// are checked the same way.
		for _, g := range r.LocalGlobals {
			if !objIDs[g] {
				report("rooms[%s]: local global: no object with id %q", r.ID, g)
			}
		}
	}

	for _, o := range doc.Objects {
		if o.Location != "" && o.Location != PlayerID && !ids[o.Location] {
			report("objects[%s]: no entity with id %q to contain it", o.ID, o.Location)
		}
		if o.Global && o.Location != "" {
			report("objects[%s]: global objects cannot have a location", o.ID)
		}
		for _, f := range o.Flags {
			if !world.IsKnownFlag(world.Flag(f)) {
				report("objects[%s]: unknown flag %q", o.ID, f)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid world file:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}
