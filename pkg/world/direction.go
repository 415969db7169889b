package world

// Direction names a compass or relative exit direction.
type Direction string

const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	NorthEast Direction = "northeast"
	NorthWest Direction = "northwest"
	SouthEast Direction = "southeast"
	SouthWest Direction = "southwest"
	Up        Direction = "up"
	Down      Direction = "down"
	In        Direction = "in"
	Out       Direction = "out"
)

var directionAliases = map[string]Direction{
	"north": North, "n": North,
	"south": South, "s": South,
	"east": East, "e": East,
	"west": West, "w": West,
	"northeast": NorthEast, "ne": NorthEast,
	"northwest": NorthWest, "nw": NorthWest,
	"southeast": SouthEast, "se": SouthEast,
	"southwest": SouthWest, "sw": SouthWest,
	"up": Up, "u": Up,
	"down": Down, "d": Down,
	"in": In, "inside": In,
	"out": Out, "outside": Out,
}

var opposites = map[Direction]Direction{
	North: South, South: North,
	East: West, West: East,
	NorthEast: SouthWest, SouthWest: NorthEast,
	NorthWest: SouthEast, SouthEast: NorthWest,
	Up: Down, Down: Up,
	In: Out, Out: In,
}

// ParseDirection resolves a lowercase token (full name or abbreviation) to a
// Direction.
func ParseDirection(tok string) (Direction, bool) {
	d, ok := directionAliases[tok]
	return d, ok
}

// Opposite returns the reverse direction. Every direction has one.
func Opposite(d Direction) Direction {
	return opposites[d]
}
