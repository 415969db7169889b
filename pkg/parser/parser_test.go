package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/fiction-engine/pkg/world"
)

// newParseWorld builds a lit room with a ball, a lamp and an open box, a hat
// in the player's inventory, and the parser over it all.
func newParseWorld(t *testing.T) (*Parser, *world.World, *world.Player) {
	t.Helper()

	w := world.New("test")
	room := world.NewRoom("hall", "Hall", "A hall.", world.FlagLit)
	require.NoError(t, w.AddRoom(room))

	player := world.NewPlayer("player", "you")
	require.NoError(t, w.SetPlayer(player))
	require.NoError(t, player.MoveTo(&room.Entity))

	for _, e := range []*world.Entity{
		world.NewEntity("ball", "red ball", "A ball.", world.FlagTakable),
		world.NewEntity("lamp", "brass lamp", "A lamp.", world.FlagTakable, world.FlagLightSource, world.FlagDevice),
		world.NewEntity("box", "wooden box", "A box.", world.FlagContainer, world.FlagOpenable, world.FlagOpen),
	} {
		require.NoError(t, w.Add(e))
		require.NoError(t, e.MoveTo(&room.Entity))
	}

	hat := world.NewEntity("hat", "hat", "A floppy hat.", world.FlagTakable, world.FlagWearable, world.FlagWorn)
	require.NoError(t, w.Add(hat))
	require.NoError(t, hat.MoveTo(&player.Entity))

	return New(w), w, player
}

func TestParseDirections(t *testing.T) {
	p, _, player := newParseWorld(t)

	tests := []struct {
		input string
		dir   world.Direction
	}{
		{"north", world.North},
		{"n", world.North},
		{"SE", world.SouthEast},
		{"go west", world.West},
		{"walk up", world.Up},
		{"in", world.In},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			cmd := p.Parse(tc.input, player)
			assert.Equal(t, world.ActionMove, cmd.Action)
			assert.Equal(t, tc.dir, cmd.Direction)
		})
	}
}

func TestParsePhrasalVerbs(t *testing.T) {
	p, w, player := newParseWorld(t)
	hat, _ := w.Entity("hat")
	ball, _ := w.Entity("ball")
	lamp, _ := w.Entity("lamp")

	tests := []struct {
		input  string
		action world.Action
		object *world.Entity
	}{
		{"take off hat", world.ActionUnwear, hat},
		{"take hat off", world.ActionUnwear, hat},
		{"take ball", world.ActionTake, ball},
		{"take the red ball", world.ActionTake, ball},
		{"pick up ball", world.ActionTake, ball},
		{"put on hat", world.ActionWear, hat},
		{"turn on lamp", world.ActionTurnOn, lamp},
		{"turn lamp on", world.ActionTurnOn, lamp},
		{"turn lamp off", world.ActionTurnOff, lamp},
		{"switch off lamp", world.ActionTurnOff, lamp},
		{"look at lamp", world.ActionExamine, lamp},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			cmd := p.Parse(tc.input, player)
			assert.Equal(t, tc.action, cmd.Action)
			assert.Equal(t, tc.object, cmd.Object)
		})
	}
}

func TestParseSynonyms(t *testing.T) {
	p, _, player := newParseWorld(t)

	tests := []struct {
		input  string
		action world.Action
	}{
		{"look", world.ActionLook},
		{"l", world.ActionLook},
		{"inventory", world.ActionInventory},
		{"i", world.ActionInventory},
		{"x ball", world.ActionExamine},
		{"inspect ball", world.ActionExamine},
		{"get ball", world.ActionTake},
		{"grab ball", world.ActionTake},
		{"discard hat", world.ActionDrop},
		{"don hat", world.ActionWear},
		{"doff hat", world.ActionUnwear},
		{"light lamp", world.ActionTurnOn},
		{"extinguish lamp", world.ActionTurnOff},
		{"z", world.ActionWait},
		{"g", world.ActionAgain},
		{"q", world.ActionQuit},
		{"save", world.ActionSave},
		{"restore", world.ActionRestore},
		{"version", world.ActionVersion},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			cmd := p.Parse(tc.input, player)
			assert.Equal(t, tc.action, cmd.Action)
		})
	}
}

func TestParsePunctuationAndArticles(t *testing.T) {
	p, w, player := newParseWorld(t)
	ball, _ := w.Entity("ball")

	cmd := p.Parse("  Take  the RED ball!  ", player)
	assert.Equal(t, world.ActionTake, cmd.Action)
	assert.Equal(t, ball, cmd.Object)
	assert.Equal(t, "red ball", cmd.ObjectName)
}

func TestParsePut(t *testing.T) {
	p, w, player := newParseWorld(t)
	ball, _ := w.Entity("ball")
	box, _ := w.Entity("box")

	cmd := p.Parse("put ball in box", player)
	assert.Equal(t, world.ActionPutIn, cmd.Action)
	assert.Equal(t, ball, cmd.Object)
	assert.Equal(t, box, cmd.Second)

	cmd = p.Parse("place hat on box", player)
	assert.Equal(t, world.ActionPutOn, cmd.Action)
	assert.Equal(t, box, cmd.Second)

	cmd = p.Parse("put ball", player)
	assert.Equal(t, world.ActionIncomplete, cmd.Action)
	assert.Equal(t, "Where do you want to put that?", cmd.Message)
	assert.Equal(t, ball, cmd.Object)

	cmd = p.Parse("put", player)
	assert.Equal(t, world.ActionIncomplete, cmd.Action)
	assert.Equal(t, "What do you want to put, and where?", cmd.Message)

	cmd = p.Parse("put in box", player)
	assert.Equal(t, world.ActionIncomplete, cmd.Action)
}

func TestParseUnresolvedObjectIsNotAnError(t *testing.T) {
	p, _, player := newParseWorld(t)

	cmd := p.Parse("take unicorn", player)
	assert.Equal(t, world.ActionTake, cmd.Action)
	assert.Nil(t, cmd.Object)
	assert.Equal(t, "unicorn", cmd.ObjectName)
}

func TestParsePronoun(t *testing.T) {
	p, w, player := newParseWorld(t)
	ball, _ := w.Entity("ball")

	cmd := p.Parse("take it", player)
	assert.Nil(t, cmd.Object, "no referent yet")

	player.SetLastMentioned(ball)
	cmd = p.Parse("take it", player)
	assert.Equal(t, ball, cmd.Object)
}

func TestParseInstrument(t *testing.T) {
	p, w, player := newParseWorld(t)
	box, _ := w.Entity("box")
	lamp, _ := w.Entity("lamp")

	cmd := p.Parse("open box with lamp", player)
	assert.Equal(t, world.ActionOpen, cmd.Action)
	assert.Equal(t, box, cmd.Object)
	assert.Equal(t, lamp, cmd.Second)
	assert.Equal(t, "lamp", cmd.SecondName)
}

func TestParseCustomVerb(t *testing.T) {
	p, w, player := newParseWorld(t)
	lamp, _ := w.Entity("lamp")

	cmd := p.Parse("polish lamp gently", player)
	assert.Equal(t, world.ActionCustom, cmd.Action)
	assert.Equal(t, "polish", cmd.Verb)
	assert.Equal(t, []*world.Entity{lamp}, cmd.Objects)
	assert.Equal(t, []string{"gently"}, cmd.Modifiers)
}

func TestParseUnknown(t *testing.T) {
	p, _, player := newParseWorld(t)

	cmd := p.Parse("", player)
	assert.Equal(t, world.ActionUnknown, cmd.Action)
	assert.Equal(t, "No command given", cmd.Message)

	cmd = p.Parse("12345", player)
	assert.Equal(t, world.ActionUnknown, cmd.Action)
	assert.Equal(t, "I don't understand that.", cmd.Message)
}

func TestParseInDarkRoomBindsNothing(t *testing.T) {
	p, w, player := newParseWorld(t)
	room := player.CurrentRoom()
	room.ClearFlag(world.FlagLit)

	cmd := p.Parse("take ball", player)
	assert.Equal(t, world.ActionTake, cmd.Action)
	assert.Nil(t, cmd.Object)
	assert.Equal(t, "ball", cmd.ObjectName)

	// Scope comes back with the light.
	room.SetFlag(world.FlagLit)
	ball, _ := w.Entity("ball")
	cmd = p.Parse("take ball", player)
	assert.Equal(t, ball, cmd.Object)
}

func TestParseIsDeterministic(t *testing.T) {
	p, w, player := newParseWorld(t)
	ball, _ := w.Entity("ball")

	for i := 0; i < 10; i++ {
		cmd := p.Parse("take ball", player)
		require.Equal(t, ball, cmd.Object)
	}
}
