package memory

import (
	"context"

	"castaway/internal/domain/tribe"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, gameID string, events []tribe.DomainEvent) error {
	r.store.events[gameID] = append(r.store.events[gameID], events...)
	return nil
}

func (r EventRepo) ListByGameID(_ context.Context, gameID string, limit int) ([]tribe.DomainEvent, error) {
	all := r.store.events[gameID]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	out := make([]tribe.DomainEvent, len(all))
	copy(out, all)
	return out, nil
}
