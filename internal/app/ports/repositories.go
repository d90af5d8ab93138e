package ports

import (
	"context"
	"time"

	"castaway/internal/domain/tribe"
)

type TurnResult struct {
	UpdatedState tribe.GameState
	Events       []tribe.DomainEvent
	ResultCode   tribe.ResultCode
}

// TurnExecutionRecord is the stored outcome of a mutating turn request.
// Turn endpoints consume randomness, so retries must replay the recorded
// result instead of re-rolling it.
type TurnExecutionRecord struct {
	GameID         string
	IdempotencyKey string
	Kind           string
	Result         TurnResult
	AppliedAt      time.Time
}

type GameRepository interface {
	GetByGameID(ctx context.Context, gameID string) (tribe.GameState, error)
	// SaveWithVersion persists the aggregate iff the stored version still
	// matches expectedVersion; expectedVersion 0 means create.
	SaveWithVersion(ctx context.Context, state tribe.GameState, expectedVersion int64) error
}

type TurnExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, gameID, key string) (*TurnExecutionRecord, error)
	SaveExecution(ctx context.Context, execution TurnExecutionRecord) error
}

type EventRepository interface {
	Append(ctx context.Context, gameID string, events []tribe.DomainEvent) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]tribe.DomainEvent, error)
}

type GameCredentialRecord struct {
	GameID    string
	KeySalt   []byte
	KeyHash   []byte
	Status    string
	CreatedAt time.Time
}

type GameCredentialRepository interface {
	Create(ctx context.Context, credential GameCredentialRecord) error
	GetByGameID(ctx context.Context, gameID string) (GameCredentialRecord, error)
}
