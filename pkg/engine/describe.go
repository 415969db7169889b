package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/fiction-engine/pkg/world"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// describeRoom prints the room header and, depending on verbosity and the
// force flag, its full description, visible contents and exits. A look
// phase handler returning true replaces all of it; in the dark, a flash
// phase handler gets the same chance before the darkness line.
func (e *Engine) describeRoom(ctx *world.ActionContext, room *world.Room, force bool) {
	if room == nil {
		return
	}
	if !e.resolver.IsLit(room, ctx.Actor) {
		if room.ExecutePhase(world.PhaseFlash, ctx) {
			return
		}
		e.print("It is pitch black. You can't see a thing.")
		return
	}
	if room.ExecutePhase(world.PhaseLook, ctx) {
		room.MarkVisited()
		return
	}

	e.print(titleCaser.String(strings.ToLower(room.Name)))
	full := force ||
		e.verbosity == VerbosityVerbose ||
		(e.verbosity == VerbosityBrief && !room.Visited())
	if full && room.Description != "" {
		e.print(room.Description)
	}

	e.listRoomContents(ctx, room)

	if full {
		if dirs := room.Directions(); len(dirs) > 0 {
			names := make([]string, len(dirs))
			for i, d := range dirs {
				names[i] = string(d)
			}
			e.print("Obvious exits: " + strings.Join(names, ", ") + ".")
		}
	}
	room.MarkVisited()
}

// listRoomContents prints the room's notable contents. The actor is never
// listed; content can suppress fixtures by setting the "scenery" state
// flag, which also keeps them out of this list while leaving them in
// scope.
func (e *Engine) listRoomContents(ctx *world.ActionContext, room *world.Room) {
	for _, it := range room.Contents() {
		if it == &ctx.Actor.Entity || it.BoolState("scenery") {
			continue
		}
		switch {
		case it.HasFlag(world.FlagPerson):
			e.print(fmt.Sprintf("%s is here.", titleCaser.String(strings.ToLower(it.Name))))
		case it.HasFlag(world.FlagPlural):
			e.print(fmt.Sprintf("There are %s here.", it.Name))
		default:
			e.print(fmt.Sprintf("There is %s here.", indefinite(it)))
		}
	}
}

func (e *Engine) listInventory(ctx *world.ActionContext) {
	inv := ctx.Actor.Inventory()
	if len(inv) == 0 {
		e.print("You aren't carrying anything.")
		return
	}
	e.print("You are carrying:")
	for _, it := range inv {
		line := "  " + indefinite(it)
		if it.HasFlag(world.FlagWorn) {
			line += " (being worn)"
		}
		e.print(line)
	}
}

func (e *Engine) listContainerContents(c *world.Entity) {
	items := c.Contents()
	if len(items) == 0 {
		e.print(fmt.Sprintf("The %s is empty.", c.Name))
		return
	}
	e.print(fmt.Sprintf("The %s contains:", c.Name))
	for _, it := range items {
		e.print("  " + indefinite(it))
	}
}

// indefinite prefixes the entity name with a or an, unless the entity
// opts out.
func indefinite(e *world.Entity) string {
	if e.HasFlag(world.FlagNoArticle) || e.HasFlag(world.FlagPlural) {
		return e.Name
	}
	switch {
	case e.Name == "":
		return "something"
	case strings.ContainsRune("aeiou", rune(e.Name[0])):
		return "an " + e.Name
	default:
		return "a " + e.Name
	}
}
