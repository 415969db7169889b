package world

// Player is the acting entity. Its contents are its inventory and its
// location is always the current room. The player also owns the pronoun
// referent used to resolve "it".
type Player struct {
	Entity

	lastMentioned *Entity
}

// NewPlayer creates a player entity.
func NewPlayer(id, name string) *Player {
	p := &Player{
		Entity: Entity{
			ID:    id,
			Name:  name,
			flags: make(map[Flag]struct{}),
			state: make(map[string]StateValue),
		},
	}
	p.flags[FlagPerson] = struct{}{}
	return p
}

// CurrentRoom returns the room the player stands in, or nil before
// placement.
func (p *Player) CurrentRoom() *Room {
	if p.location == nil {
		return nil
	}
	return p.location.AsRoom()
}

// Inventory returns the entities the player directly carries.
func (p *Player) Inventory() []*Entity {
	return p.Contents()
}

// LastMentioned returns the entity "it" currently refers to, or nil.
func (p *Player) LastMentioned() *Entity {
	return p.lastMentioned
}

// SetLastMentioned updates the pronoun referent.
func (p *Player) SetLastMentioned(e *Entity) {
	p.lastMentioned = e
}
