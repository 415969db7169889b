package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/fiction-engine/pkg/state"
)

func TestMemoryStorage_SaveAndLoad(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	gs := state.NewGameState("midnight-manor")
	gs.PlayerRoom = "hall"
	require.NoError(t, store.SaveGameState(ctx, gs.ID, gs))

	loaded, err := store.LoadGameState(ctx, gs.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "midnight-manor", loaded.WorldName)
	assert.Equal(t, "hall", loaded.PlayerRoom)
}

func TestMemoryStorage_LoadMissing(t *testing.T) {
	store := NewMemoryStorage()

	loaded, err := store.LoadGameState(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded, "missing gamestate should load as nil, not error")
}

func TestMemoryStorage_Delete(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	gs := state.NewGameState("midnight-manor")
	require.NoError(t, store.SaveGameState(ctx, gs.ID, gs))
	require.NoError(t, store.DeleteGameState(ctx, gs.ID))

	loaded, err := store.LoadGameState(ctx, gs.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStorage_SaveNil(t *testing.T) {
	store := NewMemoryStorage()
	assert.Error(t, store.SaveGameState(context.Background(), uuid.New(), nil))
}

func TestMemoryStorage_PingError(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	store.SetPingError(errors.New("backend down"))
	assert.Error(t, store.Ping(ctx))
}
