package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveToAndRemove(t *testing.T) {
	room := NewRoom("hall", "Hall", "A hall.")
	ball := NewEntity("ball", "red ball", "A red rubber ball.", FlagTakable)

	require.Nil(t, ball.Location())

	require.NoError(t, ball.MoveTo(&room.Entity))
	assert.Equal(t, &room.Entity, ball.Location())
	assert.Equal(t, []*Entity{ball}, room.Contents())

	chest := NewEntity("chest", "chest", "A wooden chest.", FlagContainer, FlagOpen)
	require.NoError(t, ball.MoveTo(chest))
	assert.Equal(t, chest, ball.Location())
	assert.Empty(t, room.Contents(), "old container must forget the moved entity")
	assert.Equal(t, []*Entity{ball}, chest.Contents())

	ball.Remove()
	assert.Nil(t, ball.Location())
	assert.Empty(t, chest.Contents())

	// MoveTo(nil) behaves like Remove.
	require.NoError(t, ball.MoveTo(chest))
	require.NoError(t, ball.MoveTo(nil))
	assert.Nil(t, ball.Location())
	assert.Empty(t, chest.Contents())
}

func TestMoveToRejectsCycles(t *testing.T) {
	room := NewRoom("hall", "Hall", "A hall.")
	chest := NewEntity("chest", "chest", "A chest.", FlagContainer)
	box := NewEntity("box", "box", "A box.", FlagContainer)

	require.NoError(t, chest.MoveTo(&room.Entity))
	require.NoError(t, box.MoveTo(chest))

	err := chest.MoveTo(box)
	require.Error(t, err)
	var ce *ContainmentError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "chest", ce.Entity)
	assert.Equal(t, "box", ce.Dest)

	// The failed move leaves the graph untouched.
	assert.Equal(t, &room.Entity, chest.Location())
	assert.Equal(t, chest, box.Location())

	err = box.MoveTo(box)
	assert.Error(t, err, "an entity cannot contain itself")
}

func TestContainsIsTransitive(t *testing.T) {
	room := NewRoom("hall", "Hall", "A hall.")
	chest := NewEntity("chest", "chest", "A chest.", FlagContainer)
	coin := NewEntity("coin", "coin", "A coin.", FlagTakable)

	require.NoError(t, chest.MoveTo(&room.Entity))
	require.NoError(t, coin.MoveTo(chest))

	assert.True(t, chest.Contains(coin))
	assert.True(t, room.Entity.Contains(coin))
	assert.True(t, room.Entity.Contains(chest))
	assert.False(t, coin.Contains(chest))
	assert.False(t, chest.Contains(nil))
}

func TestFlags(t *testing.T) {
	lamp := NewEntity("lamp", "lamp", "A lamp.", FlagLightSource, FlagDevice)

	assert.True(t, lamp.HasFlag(FlagLightSource))
	assert.False(t, lamp.HasFlag(FlagOn))

	lamp.SetFlag(FlagOn)
	assert.True(t, lamp.HasFlag(FlagOn))

	lamp.ClearFlag(FlagOn)
	assert.False(t, lamp.HasFlag(FlagOn))

	// Setting twice is idempotent.
	lamp.SetFlag(FlagOn, FlagOn)
	assert.Len(t, lamp.Flags(), 3)
}

func TestStateValues(t *testing.T) {
	door := NewEntity("door", "door", "A door.")

	door.SetState("uses", IntValue(3))
	n, ok := door.IntState("uses")
	require.True(t, ok)
	assert.Equal(t, 3, n)

	door.SetState("oiled", BoolValue(true))
	assert.True(t, door.BoolState("oiled"))
	assert.False(t, door.BoolState("missing"))

	door.SetState("key", StringValue("brass_key"))
	s, ok := door.StringState("key")
	require.True(t, ok)
	assert.Equal(t, "brass_key", s)

	// Kind mismatches read as absent.
	_, ok = door.IntState("key")
	assert.False(t, ok)

	door.ClearState("uses")
	_, ok = door.IntState("uses")
	assert.False(t, ok)
}

func TestIsKnownFlag(t *testing.T) {
	assert.True(t, IsKnownFlag(FlagTakable))
	assert.True(t, IsKnownFlag(FlagLocked))
	assert.False(t, IsKnownFlag(Flag("sparkly")))
}
