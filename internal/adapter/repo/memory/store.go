package memory

import (
	"sync"

	"castaway/internal/app/ports"
	"castaway/internal/domain/tribe"
)

// Store backs the repository ports with plain maps, for demo mode and
// tests. TxManager serializes access through the store mutex, which stands
// in for real transaction isolation.
type Store struct {
	mu          sync.Mutex
	games       map[string]tribe.GameState
	credentials map[string]ports.GameCredentialRecord
	executions  map[string]ports.TurnExecutionRecord
	events      map[string][]tribe.DomainEvent
}

func NewStore() *Store {
	return &Store{
		games:       make(map[string]tribe.GameState),
		credentials: make(map[string]ports.GameCredentialRecord),
		executions:  make(map[string]ports.TurnExecutionRecord),
		events:      make(map[string][]tribe.DomainEvent),
	}
}

func execKey(gameID, key string) string {
	return gameID + "::" + key
}

func (s *Store) SeedGame(state tribe.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[state.GameID] = state
}
