package parser

import "github.com/jwebster45206/fiction-engine/pkg/world"

// Articles are dropped before any other interpretation.
var articles = map[string]bool{
	"the": true,
	"a":   true,
	"an":  true,
}

// phrasalVerbs maps two-token verb phrases to canonical actions. These are
// tried before single-token verbs so that "take off" never parses as a
// take of something named "off".
var phrasalVerbs = map[string]world.Action{
	"take off":   world.ActionUnwear,
	"put on":     world.ActionWear,
	"look at":    world.ActionExamine,
	"pick up":    world.ActionTake,
	"put down":   world.ActionDrop,
	"turn on":    world.ActionTurnOn,
	"turn off":   world.ActionTurnOff,
	"switch on":  world.ActionTurnOn,
	"switch off": world.ActionTurnOff,
}

// particles are the second words of phrasal verbs, accepted in trailing
// position ("take hat off", "turn lamp on").
var particles = map[string]bool{
	"off":  true,
	"on":   true,
	"up":   true,
	"down": true,
}

// verbSynonyms maps single tokens to canonical actions.
var verbSynonyms = map[string]world.Action{
	"go":   world.ActionMove,
	"walk": world.ActionMove,
	"head": world.ActionMove,

	"look": world.ActionLook,
	"l":    world.ActionLook,

	"inventory": world.ActionInventory,
	"inv":       world.ActionInventory,
	"i":         world.ActionInventory,

	"examine":  world.ActionExamine,
	"x":        world.ActionExamine,
	"inspect":  world.ActionExamine,
	"describe": world.ActionExamine,

	"take":  world.ActionTake,
	"get":   world.ActionTake,
	"grab":  world.ActionTake,
	"carry": world.ActionTake,

	"drop":    world.ActionDrop,
	"discard": world.ActionDrop,

	"open":  world.ActionOpen,
	"close": world.ActionClose,
	"shut":  world.ActionClose,

	"wear": world.ActionWear,
	"don":  world.ActionWear,

	"doff":   world.ActionUnwear,
	"remove": world.ActionUnwear,

	"light":      world.ActionTurnOn,
	"extinguish": world.ActionTurnOff,
	"douse":      world.ActionTurnOff,

	"flip":   world.ActionFlip,
	"switch": world.ActionFlip,
	"toggle": world.ActionFlip,

	"read":   world.ActionRead,
	"peruse": world.ActionRead,

	"wait": world.ActionWait,
	"z":    world.ActionWait,

	"again": world.ActionAgain,
	"g":     world.ActionAgain,

	"save":       world.ActionSave,
	"restore":    world.ActionRestore,
	"restart":    world.ActionRestart,
	"quit":       world.ActionQuit,
	"q":          world.ActionQuit,
	"brief":      world.ActionBrief,
	"verbose":    world.ActionVerbose,
	"superbrief": world.ActionSuperbrief,
	"version":    world.ActionVersion,
}

// putVerbs introduce the two-object put commands; the preposition selects
// put-in versus put-on.
var putVerbs = map[string]bool{
	"put":    true,
	"place":  true,
	"insert": true,
	"hang":   true,
	"stick":  true,
}

// containerPreps and surfacePreps split "put X in Y" from "put X on Y".
var containerPreps = map[string]bool{
	"in":     true,
	"into":   true,
	"inside": true,
}

var surfacePreps = map[string]bool{
	"on":   true,
	"onto": true,
	"upon": true,
}

// instrumentPreps introduce an instrument phrase ("open door with key").
var instrumentPreps = map[string]bool{
	"with":  true,
	"using": true,
}
