package worldfile

import (
	"fmt"
	"os"

	"github.com/jwebster45206/fiction-engine/pkg/world"
)

// Load reads, validates and builds a world from a YAML file.
func Load(path string) (*world.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Build constructs a world from a validated document. The player entity is
// created under the reserved "player" ID and placed in the start room.
func Build(doc *Document) (*world.World, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	w := world.New(doc.Name)

	rooms := make(map[string]*world.Room, len(doc.Rooms))
	for _, rd := range doc.Rooms {
		var flags []world.Flag
		if rd.Lit {
			flags = append(flags, world.FlagLit)
		}
		r := world.NewRoom(rd.ID, rd.Name, rd.Description, flags...)
		if err := w.AddRoom(r); err != nil {
			return nil, err
		}
		rooms[rd.ID] = r
	}

	objects := make(map[string]*world.Entity, len(doc.Objects))
	for _, od := range doc.Objects {
		flags := make([]world.Flag, 0, len(od.Flags))
		for _, f := range od.Flags {
			flags = append(flags, world.Flag(f))
		}
		e := world.NewEntity(od.ID, od.Name, od.Description, flags...)
		if od.Scenery {
			e.SetState("scenery", world.BoolValue(true))
		}
		if od.Text != "" {
			e.SetState("text", world.StringValue(od.Text))
		}
		if err := w.Add(e); err != nil {
			return nil, err
		}
		objects[od.ID] = e
		if od.Global {
			w.AddGlobal(e)
		}
	}

	player := world.NewPlayer(PlayerID, "you")
	if err := w.SetPlayer(player); err != nil {
		return nil, err
	}

	// Placement happens after every entity exists, so objects can nest in
	// any order the file lists them.
	for _, od := range doc.Objects {
		if od.Location == "" {
			continue
		}
		var dst *world.Entity
		if od.Location == PlayerID {
			dst = &player.Entity
		} else if container, ok := w.Entity(od.Location); ok {
			dst = container
		}
		if dst == nil {
			return nil, fmt.Errorf("objects[%s]: unknown location %q", od.ID, od.Location)
		}
		if err := objects[od.ID].MoveTo(dst); err != nil {
			return nil, fmt.Errorf("objects[%s]: %w", od.ID, err)
		}
	}

	for _, rd := range doc.Rooms {
		r := rooms[rd.ID]
		for dir, xd := range rd.Exits {
			d, _ := world.ParseDirection(dir)
			x := &world.Exit{
				To:             rooms[xd.To],
				Hidden:         xd.Hidden,
				Success:        xd.Success,
				Failure:        xd.Failure,
				Deadly:         xd.Deadly,
				DeathMessage:   xd.DeathMessage,
				Victory:        xd.Victory,
				VictoryMessage: xd.VictoryMessage,
			}
			if xd.Key != "" {
				x.Key = objects[xd.Key]
			}
			r.SetExit(d, x)
		}
		for _, g := range rd.LocalGlobals {
			r.AddLocalGlobal(objects[g])
		}
	}

	if err := player.MoveTo(&rooms[doc.Start].Entity); err != nil {
		return nil, fmt.Errorf("placing player: %w", err)
	}
	return w, nil
}
