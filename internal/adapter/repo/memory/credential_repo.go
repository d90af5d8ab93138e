package memory

import (
	"context"

	"castaway/internal/app/ports"
)

type GameCredentialRepo struct {
	store *Store
}

func NewGameCredentialRepo(store *Store) GameCredentialRepo {
	return GameCredentialRepo{store: store}
}

func (r GameCredentialRepo) Create(_ context.Context, credential ports.GameCredentialRecord) error {
	if _, ok := r.store.credentials[credential.GameID]; ok {
		return ports.ErrConflict
	}
	r.store.credentials[credential.GameID] = credential
	return nil
}

func (r GameCredentialRepo) GetByGameID(_ context.Context, gameID string) (ports.GameCredentialRecord, error) {
	credential, ok := r.store.credentials[gameID]
	if !ok {
		return ports.GameCredentialRecord{}, ports.ErrNotFound
	}
	return credential, nil
}
