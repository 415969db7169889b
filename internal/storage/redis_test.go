package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/fiction-engine/pkg/state"
)

func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := NewRedisStorage(mr.Addr(), time.Hour, logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}
	return store, mr
}

func TestRedisStorage_SaveAndLoadGameState(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	require.NoError(t, store.Ping(ctx))

	gs := state.NewGameState("midnight-manor")
	gs.PlayerRoom = "foyer"
	gs.Score = 5
	gs.Moves = 12
	gs.Entities["lamp"] = state.EntityState{
		Location: "player",
		Flags:    []string{"light-source", "on", "takable"},
	}
	gs.Events = []state.EventState{{Name: "lamp-burnout", Turns: 30, Priority: 1}}

	require.NoError(t, store.SaveGameState(ctx, gs.ID, gs))

	loaded, err := store.LoadGameState(ctx, gs.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, gs.ID, loaded.ID)
	assert.Equal(t, "midnight-manor", loaded.WorldName)
	assert.Equal(t, "foyer", loaded.PlayerRoom)
	assert.Equal(t, 5, loaded.Score)
	assert.Equal(t, 12, loaded.Moves)
	assert.Equal(t, []string{"light-source", "on", "takable"}, loaded.Entities["lamp"].Flags)
	require.Len(t, loaded.Events, 1)
	assert.Equal(t, "lamp-burnout", loaded.Events[0].Name)
}

func TestRedisStorage_LoadMissingGameState(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = store.Close() }()

	loaded, err := store.LoadGameState(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded, "missing gamestate should load as nil, not error")
}

func TestRedisStorage_DeleteGameState(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	gs := state.NewGameState("midnight-manor")
	require.NoError(t, store.SaveGameState(ctx, gs.ID, gs))

	require.NoError(t, store.DeleteGameState(ctx, gs.ID))

	loaded, err := store.LoadGameState(ctx, gs.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStorage_SaveExpires(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	gs := state.NewGameState("midnight-manor")
	require.NoError(t, store.SaveGameState(ctx, gs.ID, gs))

	mr.FastForward(2 * time.Hour)

	loaded, err := store.LoadGameState(ctx, gs.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded, "save should expire after the TTL")
}
