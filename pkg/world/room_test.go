package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectCreatesReverseExit(t *testing.T) {
	hall := NewRoom("hall", "Hall", "A hall.")
	study := NewRoom("study", "Study", "A study.")

	hall.Connect(North, study)

	x, ok := hall.Exit(North)
	require.True(t, ok)
	assert.Equal(t, study, x.To)

	back, ok := study.Exit(South)
	require.True(t, ok)
	assert.Equal(t, hall, back.To)
}

func TestConnectOneWay(t *testing.T) {
	top := NewRoom("top", "Top", "The top.")
	pit := NewRoom("pit", "Pit", "The pit.")

	top.ConnectOneWay(Down, pit)

	_, ok := pit.Exit(Up)
	assert.False(t, ok)
}

func TestDirectionsSkipHidden(t *testing.T) {
	hall := NewRoom("hall", "Hall", "A hall.")
	study := NewRoom("study", "Study", "A study.")
	vault := NewRoom("vault", "Vault", "A vault.")

	hall.Connect(West, study)
	secret := &Exit{To: vault, Hidden: true}
	hall.SetExit(East, secret)

	assert.Equal(t, []Direction{West}, hall.Directions())

	secret.Reveal()
	assert.Equal(t, []Direction{East, West}, hall.Directions())
}

func TestExecutePhaseOrdersByPriority(t *testing.T) {
	room := NewRoom("hall", "Hall", "A hall.")
	var order []string

	room.Handle(PhaseEndTurn, PriorityLow, func(ctx *ActionContext) bool {
		order = append(order, "low")
		return false
	})
	room.Handle(PhaseEndTurn, PriorityHigh, func(ctx *ActionContext) bool {
		order = append(order, "high")
		return false
	})
	room.Handle(PhaseEndTurn, PriorityNormal, func(ctx *ActionContext) bool {
		order = append(order, "normal-1")
		return false
	})
	room.Handle(PhaseEndTurn, PriorityNormal, func(ctx *ActionContext) bool {
		order = append(order, "normal-2")
		return false
	})

	produced := room.ExecutePhase(PhaseEndTurn, &ActionContext{})
	assert.False(t, produced)
	assert.Equal(t, []string{"high", "normal-1", "normal-2", "low"}, order)
}

func TestExecutePhaseStopsAtFirstTrue(t *testing.T) {
	room := NewRoom("hall", "Hall", "A hall.")
	var order []string

	room.Handle(PhaseBeginCommand, PriorityHigh, func(ctx *ActionContext) bool {
		order = append(order, "veto")
		return true
	})
	room.Handle(PhaseBeginCommand, PriorityNormal, func(ctx *ActionContext) bool {
		order = append(order, "never")
		return false
	})

	produced := room.ExecutePhase(PhaseBeginCommand, &ActionContext{})
	assert.True(t, produced)
	assert.Equal(t, []string{"veto"}, order)
}

func TestExecutePhaseUnknownPhase(t *testing.T) {
	room := NewRoom("hall", "Hall", "A hall.")
	assert.False(t, room.ExecutePhase(PhaseFlash, &ActionContext{}))
}

func TestExitOpen(t *testing.T) {
	hall := NewRoom("hall", "Hall", "A hall.")
	vault := NewRoom("vault", "Vault", "A vault.")
	key := NewEntity("key", "key", "A key.", FlagTakable)
	player := NewPlayer("player", "you")
	require.NoError(t, player.MoveTo(&hall.Entity))

	ctx := &ActionContext{Actor: player}

	x := &Exit{To: vault, Key: key}
	assert.False(t, x.Open(ctx), "key not carried")

	require.NoError(t, key.MoveTo(&player.Entity))
	assert.True(t, x.Open(ctx))

	x.Hidden = true
	assert.False(t, x.Open(ctx))
}
