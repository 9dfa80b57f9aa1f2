// Package storage provides the persistence gateway for player state.
// This package implements the repository pattern to keep the domain
// pure: the engine sees only the PlayerStore interface.
package storage

import (
	"context"
	"errors"

	"github.com/mrjones-game/life-server/internal/domain/player"
)

// ErrNotFound is returned by Load for a player with no saved state.
var ErrNotFound = errors.New("storage: player not found")

// PlayerStore is the synchronous, durable persistence gateway. The
// engine treats a returned error as "not committed": no retry happens
// here, and the caller must not report success to the end user.
type PlayerStore interface {
	// Load retrieves a player's state, or ErrNotFound.
	Load(ctx context.Context, username string) (*player.State, error)

	// Save durably writes a player's state, replacing any previous one.
	Save(ctx context.Context, username string, state *player.State) error
}
