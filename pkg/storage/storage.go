// Package storage defines persistence for saved games. The engine depends
// only on the interface; the in-memory implementation backs tests and
// single-process play, and the Redis implementation lives in
// internal/storage.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwebster45206/fiction-engine/pkg/state"
)

// Storage persists game snapshots by session ID.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// SaveGameState stores a snapshot under the session ID, replacing any
	// previous save for that session.
	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error
	// LoadGameState returns the snapshot for a session, or nil when none
	// exists.
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error)
	// DeleteGameState removes a session's snapshot.
	DeleteGameState(ctx context.Context, id uuid.UUID) error
}
