package engine

import (
	"fmt"

	"github.com/jwebster45206/fiction-engine/pkg/world"
)

// execute applies a non-meta command to the world. Player-caused problems
// become output lines; only internal invariant violations return an error.
// The boolean reports whether the command took effect, which gates the
// pronoun referent update: a refused command ("take boulder" against
// something fixed in place) leaves "it" bound to whatever it meant before.
func (e *Engine) execute(ctx *world.ActionContext, cmd *world.Command) (bool, error) {
	switch cmd.Action {
	case world.ActionMove:
		return e.executeMove(ctx, cmd), nil
	case world.ActionLook:
		e.describeRoom(ctx, ctx.Actor.CurrentRoom(), true)
		return true, nil
	case world.ActionInventory:
		e.listInventory(ctx)
		return true, nil
	case world.ActionExamine:
		return e.executeExamine(ctx, cmd), nil
	case world.ActionTake:
		return e.executeTake(ctx, cmd), nil
	case world.ActionDrop:
		return e.executeDrop(ctx, cmd), nil
	case world.ActionOpen:
		return e.executeOpen(ctx, cmd), nil
	case world.ActionClose:
		return e.executeClose(ctx, cmd), nil
	case world.ActionPutIn:
		return e.executePut(ctx, cmd, true)
	case world.ActionPutOn:
		return e.executePut(ctx, cmd, false)
	case world.ActionWear:
		return e.executeWear(ctx, cmd), nil
	case world.ActionUnwear:
		return e.executeUnwear(ctx, cmd), nil
	case world.ActionTurnOn:
		return e.executeTurnOn(ctx, cmd), nil
	case world.ActionTurnOff:
		return e.executeTurnOff(ctx, cmd), nil
	case world.ActionFlip:
		return e.executeFlip(ctx, cmd), nil
	case world.ActionRead:
		return e.executeRead(ctx, cmd), nil
	case world.ActionWait:
		e.print("Time passes.")
		return true, nil
	case world.ActionCustom:
		// The begin-command phase already had its chance to intercept.
		e.print(fmt.Sprintf("I don't know how to %s.", cmd.Verb))
		return false, nil
	case world.ActionIncomplete:
		e.print(cmd.Message)
		return false, nil
	case world.ActionUnknown:
		if cmd.Message != "" {
			e.print(cmd.Message)
		} else {
			e.print("I don't understand that.")
		}
		return false, nil
	default:
		return false, fmt.Errorf("unhandled action %q", cmd.Action)
	}
}

// missingObject prints the right complaint for a nil object and reports
// whether execution should stop.
func (e *Engine) missingObject(ctx *world.ActionContext, cmd *world.Command, prompt string) bool {
	if cmd.Object != nil {
		return false
	}
	if cmd.ObjectName == "" {
		e.print(prompt)
		return true
	}
	if !e.resolver.IsLit(ctx.Actor.CurrentRoom(), ctx.Actor) {
		e.print("It's too dark to see anything here.")
		return true
	}
	e.print(fmt.Sprintf("You don't see any %s here.", cmd.ObjectName))
	return true
}

func (e *Engine) executeMove(ctx *world.ActionContext, cmd *world.Command) bool {
	if cmd.Direction == "" {
		e.print("Which way do you want to go?")
		return false
	}
	room := ctx.Actor.CurrentRoom()
	x, ok := room.Exit(cmd.Direction)
	if !ok || x.Hidden {
		e.print("You can't go that way.")
		return false
	}
	if x.Key != nil && !ctx.Actor.Contains(x.Key) {
		if x.Failure != "" {
			e.print(x.Failure)
		} else {
			e.print("It's locked.")
		}
		return false
	}
	if x.Condition != nil && !x.Condition(ctx) {
		if x.Failure != "" {
			e.print(x.Failure)
		} else {
			e.print("You can't go that way.")
		}
		return false
	}

	if x.Success != "" {
		e.print(x.Success)
	}
	if x.Script != nil {
		x.Script(ctx)
	}
	if x.Deadly {
		msg := x.DeathMessage
		if msg == "" {
			msg = "You have died."
		}
		ctx.World.Lose(msg)
		return true
	}

	// Rooms cannot nest, so this move cannot cycle.
	_ = ctx.Actor.MoveTo(&x.To.Entity)
	ctx.Room = x.To

	if x.Victory && (x.VictoryCondition == nil || x.VictoryCondition(ctx)) {
		msg := x.VictoryMessage
		if msg == "" {
			msg = "You have won."
		}
		ctx.World.Win(msg)
		return true
	}

	if x.To.ExecutePhase(world.PhaseEnter, ctx) {
		x.To.MarkVisited()
		return true
	}
	e.describeRoom(ctx, x.To, false)
	return true
}

func (e *Engine) executeExamine(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Examine what?") {
		return false
	}
	obj := cmd.Object
	if obj.Description != "" {
		e.print(obj.Description)
	} else {
		e.print(fmt.Sprintf("You see nothing special about the %s.", obj.Name))
	}
	if obj.HasFlag(world.FlagContainer) {
		switch {
		case obj.HasFlag(world.FlagOpen) || obj.HasFlag(world.FlagTransparent):
			e.listContainerContents(obj)
		case obj.HasFlag(world.FlagOpenable):
			e.print(fmt.Sprintf("The %s is closed.", obj.Name))
		}
	}
	return true
}

func (e *Engine) executeTake(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Take what?") {
		return false
	}
	obj := cmd.Object
	switch {
	case ctx.Actor.Contains(obj) && obj.Location() == &ctx.Actor.Entity:
		e.print("You already have that.")
	case obj.HasFlag(world.FlagPerson):
		e.print(fmt.Sprintf("The %s wouldn't appreciate that.", obj.Name))
	case !obj.HasFlag(world.FlagTakable):
		e.print("You can't take that.")
	default:
		if err := obj.MoveTo(&ctx.Actor.Entity); err != nil {
			e.print("You can't take that.")
			return false
		}
		e.print("Taken.")
		return true
	}
	return false
}

func (e *Engine) executeDrop(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Drop what?") {
		return false
	}
	obj := cmd.Object
	if !ctx.Actor.Contains(obj) {
		e.print("You aren't carrying that.")
		return false
	}
	obj.ClearFlag(world.FlagWorn)
	room := ctx.Actor.CurrentRoom()
	if err := obj.MoveTo(&room.Entity); err != nil {
		e.print("You can't drop that here.")
		return false
	}
	e.print("Dropped.")
	return true
}

func (e *Engine) executeOpen(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Open what?") {
		return false
	}
	obj := cmd.Object
	switch {
	case !obj.HasFlag(world.FlagOpenable):
		e.print("You can't open that.")
	case obj.HasFlag(world.FlagOpen):
		e.print("It's already open.")
	case obj.HasFlag(world.FlagLocked):
		if keyID, ok := obj.StringState("key"); ok && cmd.Second != nil && cmd.Second.ID == keyID {
			obj.ClearFlag(world.FlagLocked)
			obj.SetFlag(world.FlagOpen)
			e.print(fmt.Sprintf("You unlock the %s with the %s and open it.", obj.Name, cmd.Second.Name))
			return true
		}
		e.print("It's locked.")
	default:
		obj.SetFlag(world.FlagOpen)
		if obj.HasFlag(world.FlagContainer) && len(obj.Contents()) > 0 && !obj.HasFlag(world.FlagTransparent) {
			e.print(fmt.Sprintf("You open the %s, revealing its contents.", obj.Name))
			e.listContainerContents(obj)
			return true
		}
		e.print(fmt.Sprintf("You open the %s.", obj.Name))
		return true
	}
	return false
}

func (e *Engine) executeClose(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Close what?") {
		return false
	}
	obj := cmd.Object
	switch {
	case !obj.HasFlag(world.FlagOpenable):
		e.print("You can't close that.")
	case !obj.HasFlag(world.FlagOpen):
		e.print("It's already closed.")
	default:
		obj.ClearFlag(world.FlagOpen)
		e.print(fmt.Sprintf("You close the %s.", obj.Name))
		e.reportDarkness(ctx)
		return true
	}
	return false
}

// executePut handles put-in and put-on.
func (e *Engine) executePut(ctx *world.ActionContext, cmd *world.Command, intoContainer bool) (bool, error) {
	if e.missingObject(ctx, cmd, "Put what?") {
		return false, nil
	}
	obj := cmd.Object
	if cmd.Second == nil {
		if cmd.SecondName == "" {
			e.print("Where do you want to put that?")
		} else {
			e.print(fmt.Sprintf("You don't see any %s here.", cmd.SecondName))
		}
		return false, nil
	}
	dst := cmd.Second

	if !ctx.Actor.Contains(obj) {
		e.print("You aren't holding that.")
		return false, nil
	}
	if obj == dst || obj.Contains(dst) {
		e.print("You can't put something inside itself.")
		return false, nil
	}
	if intoContainer {
		if !dst.HasFlag(world.FlagContainer) {
			e.print(fmt.Sprintf("The %s can't contain things.", dst.Name))
			return false, nil
		}
		if dst.HasFlag(world.FlagOpenable) && !dst.HasFlag(world.FlagOpen) {
			e.print(fmt.Sprintf("The %s is closed.", dst.Name))
			return false, nil
		}
	} else if !dst.HasFlag(world.FlagSurface) {
		e.print(fmt.Sprintf("You can't put things on the %s.", dst.Name))
		return false, nil
	}

	obj.ClearFlag(world.FlagWorn)
	if err := obj.MoveTo(dst); err != nil {
		// Cycles were checked above; anything left is an engine bug.
		return false, err
	}
	if intoContainer {
		e.print(fmt.Sprintf("You put the %s in the %s.", obj.Name, dst.Name))
	} else {
		e.print(fmt.Sprintf("You put the %s on the %s.", obj.Name, dst.Name))
	}
	return true, nil
}

func (e *Engine) executeWear(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Wear what?") {
		return false
	}
	obj := cmd.Object
	switch {
	case !obj.HasFlag(world.FlagWearable):
		e.print("You can't wear that.")
	case obj.HasFlag(world.FlagWorn):
		e.print("You're already wearing that.")
	case !ctx.Actor.Contains(obj):
		e.print("You aren't holding that.")
	default:
		obj.SetFlag(world.FlagWorn)
		e.print(fmt.Sprintf("You put on the %s.", obj.Name))
		return true
	}
	return false
}

func (e *Engine) executeUnwear(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Take off what?") {
		return false
	}
	obj := cmd.Object
	if !obj.HasFlag(world.FlagWorn) || !ctx.Actor.Contains(obj) {
		e.print("You aren't wearing that.")
		return false
	}
	obj.ClearFlag(world.FlagWorn)
	e.print(fmt.Sprintf("You take off the %s.", obj.Name))
	return true
}

func (e *Engine) executeTurnOn(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Turn on what?") {
		return false
	}
	obj := cmd.Object
	switch {
	case !obj.HasFlag(world.FlagDevice) && !obj.HasFlag(world.FlagLightSource):
		e.print("You can't turn that on.")
	case obj.HasFlag(world.FlagOn):
		e.print("It's already on.")
	default:
		room := ctx.Actor.CurrentRoom()
		wasLit := e.resolver.IsLit(room, ctx.Actor)
		obj.SetFlag(world.FlagOn)
		e.print(fmt.Sprintf("You turn on the %s.", obj.Name))
		if !wasLit && e.resolver.IsLit(room, ctx.Actor) {
			e.print("")
			e.describeRoom(ctx, room, false)
		}
		return true
	}
	return false
}

func (e *Engine) executeTurnOff(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Turn off what?") {
		return false
	}
	obj := cmd.Object
	switch {
	case !obj.HasFlag(world.FlagDevice) && !obj.HasFlag(world.FlagLightSource):
		e.print("You can't turn that off.")
	case !obj.HasFlag(world.FlagOn):
		e.print("It's already off.")
	default:
		obj.ClearFlag(world.FlagOn)
		e.print(fmt.Sprintf("You turn off the %s.", obj.Name))
		e.reportDarkness(ctx)
		return true
	}
	return false
}

func (e *Engine) executeFlip(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Flip what?") {
		return false
	}
	if cmd.Object.HasFlag(world.FlagOn) {
		return e.executeTurnOff(ctx, cmd)
	}
	return e.executeTurnOn(ctx, cmd)
}

func (e *Engine) executeRead(ctx *world.ActionContext, cmd *world.Command) bool {
	if e.missingObject(ctx, cmd, "Read what?") {
		return false
	}
	obj := cmd.Object
	if !obj.HasFlag(world.FlagReadable) {
		e.print("There's nothing written on that.")
		return false
	}
	if text, ok := obj.StringState("text"); ok {
		e.print(text)
		return true
	}
	e.print(obj.Description)
	return true
}

// reportDarkness notes the transition when an action just removed the last
// light.
func (e *Engine) reportDarkness(ctx *world.ActionContext) {
	room := ctx.Actor.CurrentRoom()
	if room != nil && !e.resolver.IsLit(room, ctx.Actor) {
		e.print("It is now pitch black.")
	}
}
