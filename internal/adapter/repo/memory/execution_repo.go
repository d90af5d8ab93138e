package memory

import (
	"context"

	"castaway/internal/app/ports"
)

type TurnExecutionRepo struct {
	store *Store
}

func NewTurnExecutionRepo(store *Store) TurnExecutionRepo {
	return TurnExecutionRepo{store: store}
}

func (r TurnExecutionRepo) GetByIdempotencyKey(_ context.Context, gameID, key string) (*ports.TurnExecutionRecord, error) {
	record, ok := r.store.executions[execKey(gameID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &record, nil
}

func (r TurnExecutionRepo) SaveExecution(_ context.Context, execution ports.TurnExecutionRecord) error {
	k := execKey(execution.GameID, execution.IdempotencyKey)
	if _, ok := r.store.executions[k]; ok {
		return ports.ErrConflict
	}
	r.store.executions[k] = execution
	return nil
}
