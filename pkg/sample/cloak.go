// Package sample ships a small complete game, Cloak of Darkness, built in Go
// against the world API. It doubles as a working reference for handler
// phases, lighting and gated exits.
package sample

import (
	"github.com/jwebster45206/fiction-engine/pkg/events"
	"github.com/jwebster45206/fiction-engine/pkg/world"
)

// NewCloakWorld builds the Cloak of Darkness scenario. The player starts in
// the foyer wearing a light-absorbing velvet cloak; the bar to the south
// stays dark until the cloak is hung on the hook in the cloakroom. Reading
// the message in the bar's sawdust ends the game, won or lost depending on
// how much the player blundered about in the dark.
func NewCloakWorld(sched *events.Scheduler) (*world.World, error) {
	w := world.New("Cloak of Darkness")

	foyer := world.NewRoom("foyer", "Foyer of the Opera House",
		"You are standing in a spacious hall, splendidly decorated in red and gold, with glittering chandeliers overhead. The entrance from the street is to the north, and there are doorways south and west.",
		world.FlagLit)
	cloakroom := world.NewRoom("cloakroom", "Cloakroom",
		"The walls of this small room were clearly once lined with hooks, though now only one remains. The exit is a door to the east.",
		world.FlagLit)
	bar := world.NewRoom("bar", "Foyer Bar",
		"The bar, much rockier than you'd have guessed while standing in the opulent foyer, is completely empty. There seems to be some sort of message scrawled in the sawdust on the floor.")

	for _, r := range []*world.Room{foyer, cloakroom, bar} {
		if err := w.AddRoom(r); err != nil {
			return nil, err
		}
	}

	foyer.Connect(world.South, bar)
	foyer.Connect(world.West, cloakroom)
	foyer.SetExit(world.North, &world.Exit{
		Condition: func(ctx *world.ActionContext) bool { return false },
		Failure:   "You've only just arrived, and besides, the weather outside seems to be getting worse.",
	})

	player := world.NewPlayer("player", "you")
	if err := w.SetPlayer(player); err != nil {
		return nil, err
	}
	if err := player.MoveTo(&foyer.Entity); err != nil {
		return nil, err
	}

	cloak := world.NewEntity("cloak", "velvet cloak",
		"A handsome cloak, of velvet trimmed with satin, and slightly spattered with raindrops. Its blackness is so deep that it almost seems to suck light from the room.",
		world.FlagTakable, world.FlagWearable, world.FlagWorn)
	if err := w.Add(cloak); err != nil {
		return nil, err
	}
	if err := cloak.MoveTo(&player.Entity); err != nil {
		return nil, err
	}

	hook := world.NewEntity("hook", "small brass hook",
		"It's just a small brass hook, screwed to the wall.",
		world.FlagSurface)
	hook.SetState("scenery", world.BoolValue(true))
	if err := w.Add(hook); err != nil {
		return nil, err
	}
	if err := hook.MoveTo(&cloakroom.Entity); err != nil {
		return nil, err
	}

	message := world.NewEntity("message", "message",
		"A message scrawled in the sawdust on the floor.",
		world.FlagReadable)
	message.SetState("scenery", world.BoolValue(true))
	message.SetState("disturbed", world.IntValue(0))
	if err := w.Add(message); err != nil {
		return nil, err
	}
	if err := message.MoveTo(&bar.Entity); err != nil {
		return nil, err
	}

	// The cloak soaks up the light: the bar is lit exactly when the player
	// walks in without it.
	syncBarLight := func(ctx *world.ActionContext) bool {
		if ctx.Actor.Contains(cloak) {
			bar.ClearFlag(world.FlagLit)
		} else {
			bar.SetFlag(world.FlagLit)
		}
		return false
	}
	bar.Handle(world.PhaseEnter, world.PriorityHigh, syncBarLight)
	bar.Handle(world.PhaseBeginTurn, world.PriorityHigh, syncBarLight)

	bar.Handle(world.PhaseFlash, world.PriorityNormal, func(ctx *world.ActionContext) bool {
		ctx.Print("It's pitch dark in here, and you can't see the floor. Blundering about could easily crush something underfoot.")
		return true
	})

	// Doing anything but retreating north in the dark scuffs the sawdust.
	bar.Handle(world.PhaseBeginCommand, world.PriorityHigh, func(ctx *world.ActionContext) bool {
		if bar.HasFlag(world.FlagLit) {
			return false
		}
		cmd := ctx.Command
		if cmd.Action == world.ActionMove && cmd.Direction == world.North {
			return false
		}
		n, _ := message.IntState("disturbed")
		message.SetState("disturbed", world.IntValue(n+1))
		ctx.Print("In the dark? You could easily disturb something!")
		return true
	})

	bar.Handle(world.PhaseBeginCommand, world.PriorityNormal, func(ctx *world.ActionContext) bool {
		cmd := ctx.Command
		if cmd.Object != message {
			return false
		}
		if cmd.Action != world.ActionRead && cmd.Action != world.ActionExamine {
			return false
		}
		n, _ := message.IntState("disturbed")
		if n < 2 {
			ctx.World.AddScore(1)
			ctx.World.Win("The message, neatly marked in the sawdust, reads... \"You win.\"")
		} else {
			ctx.World.Lose("The message has been carelessly trampled, making it difficult to read. You can just distinguish the words... \"You lose.\"")
		}
		return true
	})

	sched.Schedule("weather-worsens", 25, 1, func(ctx *world.ActionContext) bool {
		ctx.Print("A low rumble of thunder filters in from the street outside.")
		return true
	})

	return w, nil
}
