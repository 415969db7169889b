package world

// Action is the canonical verb of a parsed command.
type Action string

const (
	ActionMove      Action = "move"
	ActionLook      Action = "look"
	ActionInventory Action = "inventory"
	ActionExamine   Action = "examine"
	ActionTake      Action = "take"
	ActionDrop      Action = "drop"
	ActionOpen      Action = "open"
	ActionClose     Action = "close"
	ActionPutIn     Action = "put-in"
	ActionPutOn     Action = "put-on"
	ActionWear      Action = "wear"
	ActionUnwear    Action = "unwear"
	ActionTurnOn    Action = "turn-on"
	ActionTurnOff   Action = "turn-off"
	ActionFlip      Action = "flip"
	ActionRead      Action = "read"
	ActionCustom    Action = "custom"

	ActionWait       Action = "wait"
	ActionAgain      Action = "again"
	ActionSave       Action = "save"
	ActionRestore    Action = "restore"
	ActionRestart    Action = "restart"
	ActionQuit       Action = "quit"
	ActionBrief      Action = "brief"
	ActionVerbose    Action = "verbose"
	ActionSuperbrief Action = "superbrief"
	ActionVersion    Action = "version"

	ActionIncomplete Action = "incomplete"
	ActionUnknown    Action = "unknown"
)

// Command is the structured result of parsing one line of input. Object and
// Second are nil when the corresponding noun phrase matched nothing in
// scope; the raw words are preserved so execution can report what the
// player asked for.
type Command struct {
	Action    Action
	Direction Direction

	Object     *Entity
	ObjectName string
	Second     *Entity
	SecondName string

	// Custom commands keep the original verb, every noun phrase that
	// resolved in scope, and the words that did not.
	Verb      string
	Objects   []*Entity
	Modifiers []string

	// Message explains unknown and incomplete results.
	Message string
}

// Meta reports whether the command is a meta command that does not interact
// with the world model (and so works in the dark and, for Restart/Quit,
// after game over).
func (c *Command) Meta() bool {
	switch c.Action {
	case ActionSave, ActionRestore, ActionRestart, ActionQuit,
		ActionBrief, ActionVerbose, ActionSuperbrief, ActionVersion:
		return true
	}
	return false
}
