package memory

import (
	"context"

	"castaway/internal/app/ports"
	"castaway/internal/domain/tribe"
)

type GameRepo struct {
	store *Store
}

func NewGameRepo(store *Store) GameRepo {
	return GameRepo{store: store}
}

func (r GameRepo) GetByGameID(_ context.Context, gameID string) (tribe.GameState, error) {
	state, ok := r.store.games[gameID]
	if !ok {
		return tribe.GameState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r GameRepo) SaveWithVersion(_ context.Context, state tribe.GameState, expectedVersion int64) error {
	current, ok := r.store.games[state.GameID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.games[state.GameID] = state
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.games[state.GameID] = state
	return nil
}
