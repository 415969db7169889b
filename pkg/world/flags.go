package world

// Flag is a named boolean trait on an entity, drawn from a fixed symbolic set.
type Flag string

const (
	FlagTakable     Flag = "takable"      // can be picked up
	FlagWearable    Flag = "wearable"     // can be worn
	FlagWorn        Flag = "worn"         // currently worn by its holder
	FlagContainer   Flag = "container"    // can hold other entities
	FlagOpenable    Flag = "openable"     // can be opened and closed
	FlagOpen        Flag = "open"         // currently open
	FlagTransparent Flag = "transparent"  // contents visible even when closed
	FlagSurface     Flag = "surface"      // entities can be put on it
	FlagLightSource Flag = "light-source" // provides light when on
	FlagOn          Flag = "on"           // device or light source is switched on
	FlagLit         Flag = "lit"          // room is naturally lit
	FlagDevice      Flag = "device"       // can be switched on and off
	FlagPerson      Flag = "person"       // an actor, not a thing
	FlagFemale      Flag = "female"       // pronoun hint for description text
	FlagPlural      Flag = "plural"       // named as a plural
	FlagNoArticle   Flag = "no-article"   // no article before the name
	FlagReadable    Flag = "readable"     // has text that can be read
	FlagLocked      Flag = "locked"       // cannot be opened without a key
)

// KnownFlags lists every flag the engine understands. World file validation
// rejects anything outside this set.
var KnownFlags = []Flag{
	FlagTakable, FlagWearable, FlagWorn, FlagContainer, FlagOpenable,
	FlagOpen, FlagTransparent, FlagSurface, FlagLightSource, FlagOn,
	FlagLit, FlagDevice, FlagPerson, FlagFemale, FlagPlural,
	FlagNoArticle, FlagReadable, FlagLocked,
}

// IsKnownFlag reports whether f is part of the fixed flag set.
func IsKnownFlag(f Flag) bool {
	for _, k := range KnownFlags {
		if k == f {
			return true
		}
	}
	return false
}
