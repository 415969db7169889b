package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSnapshotWorld(t *testing.T) (*World, *Room, *Room, *Entity) {
	t.Helper()

	w := New("manor")
	hall := NewRoom("hall", "Hall", "A hall.", FlagLit)
	cellar := NewRoom("cellar", "Cellar", "A cellar.")
	require.NoError(t, w.AddRoom(hall))
	require.NoError(t, w.AddRoom(cellar))
	hall.Connect(Down, cellar)

	player := NewPlayer("player", "you")
	require.NoError(t, w.SetPlayer(player))
	require.NoError(t, player.MoveTo(&hall.Entity))

	lamp := NewEntity("lamp", "lamp", "A lamp.", FlagTakable, FlagLightSource, FlagDevice)
	require.NoError(t, w.Add(lamp))
	require.NoError(t, lamp.MoveTo(&hall.Entity))

	return w, hall, cellar, lamp
}

func TestSnapshotRoundTrip(t *testing.T) {
	w, hall, cellar, lamp := buildSnapshotWorld(t)
	player := w.Player()

	// Play a little: pick up the lamp, light it, descend, score.
	require.NoError(t, lamp.MoveTo(&player.Entity))
	lamp.SetFlag(FlagOn)
	lamp.SetState("fuel", IntValue(40))
	require.NoError(t, player.MoveTo(&cellar.Entity))
	hall.MarkVisited()
	cellar.MarkVisited()
	w.AddScore(5)

	gs := w.Capture()
	assert.Equal(t, "manor", gs.WorldName)
	assert.Equal(t, "cellar", gs.PlayerRoom)
	assert.Equal(t, 5, gs.Score)
	assert.ElementsMatch(t, []string{"cellar", "hall"}, gs.VisitedRooms)

	// Diverge, then restore.
	lamp.ClearFlag(FlagOn)
	lamp.SetState("fuel", IntValue(2))
	require.NoError(t, lamp.MoveTo(&hall.Entity))
	require.NoError(t, player.MoveTo(&hall.Entity))
	cellar.ResetVisited()
	w.AddScore(10)

	require.NoError(t, w.Apply(gs))

	assert.Equal(t, &player.Entity, lamp.Location())
	assert.True(t, lamp.HasFlag(FlagOn))
	fuel, ok := lamp.IntState("fuel")
	require.True(t, ok)
	assert.Equal(t, 40, fuel)
	assert.Equal(t, cellar, player.CurrentRoom())
	assert.True(t, cellar.Visited())
	assert.Equal(t, 5, w.Score())
	assert.Equal(t, OutcomePlaying, w.Outcome())
}

func TestSnapshotRestoresOutcome(t *testing.T) {
	w, _, _, _ := buildSnapshotWorld(t)

	w.Win("You did it.")
	gs := w.Capture()

	w2, _, _, _ := buildSnapshotWorld(t)
	require.NoError(t, w2.Apply(gs))
	assert.Equal(t, OutcomeWon, w2.Outcome())
	assert.Equal(t, "You did it.", w2.EndMessage())
	assert.True(t, w2.Finished())
}

func TestApplyRefusesForeignSnapshot(t *testing.T) {
	w, _, _, _ := buildSnapshotWorld(t)

	other := New("spaceship")
	gs := other.Capture()

	err := w.Apply(gs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spaceship")
}

func TestApplyRefusesUnknownEntity(t *testing.T) {
	w, _, _, _ := buildSnapshotWorld(t)

	gs := w.Capture()
	gs.Entities["ghost"] = gs.Entities["lamp"]

	assert.Error(t, w.Apply(gs))
}

func TestApplyPreservesContentsOrder(t *testing.T) {
	w, hall, _, _ := buildSnapshotWorld(t)
	player := w.Player()

	names := []string{"candle", "rope", "mirror", "bell", "locket"}
	for _, n := range names {
		e := NewEntity(n, n, "A "+n+".", FlagTakable)
		require.NoError(t, w.Add(e))
		require.NoError(t, e.MoveTo(&hall.Entity))
	}
	gs := w.Capture()

	// Shuffle the room by cycling everything through the player's hands.
	for _, n := range names {
		e, ok := w.Entity(n)
		require.True(t, ok)
		require.NoError(t, e.MoveTo(&player.Entity))
	}
	for i := len(names) - 1; i >= 0; i-- {
		e, ok := w.Entity(names[i])
		require.True(t, ok)
		require.NoError(t, e.MoveTo(&hall.Entity))
	}

	require.NoError(t, w.Apply(gs))

	var got []string
	for _, e := range hall.Contents() {
		if e != &player.Entity {
			got = append(got, e.ID)
		}
	}
	// The lamp was placed in the hall before the five props.
	assert.Equal(t, append([]string{"lamp"}, names...), got)
}

func TestApplyClearsPronounReferent(t *testing.T) {
	w, _, _, lamp := buildSnapshotWorld(t)
	player := w.Player()

	player.SetLastMentioned(lamp)
	gs := w.Capture()
	require.NoError(t, w.Apply(gs))

	assert.Nil(t, player.LastMentioned())
}

func TestWinAndLoseAreSticky(t *testing.T) {
	w := New("manor")
	w.Win("first")
	w.Lose("second")
	w.Win("third")

	assert.Equal(t, OutcomeWon, w.Outcome())
	assert.Equal(t, "first", w.EndMessage())
}
