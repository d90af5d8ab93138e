package ports

import (
	"context"

	"castaway/internal/domain/tribe"
)

// ContestContentProvider supplies the fixed contest content tables
// (riddles, logic puzzles, anagrams, the valid trait list).
type ContestContentProvider interface {
	Content(ctx context.Context) (tribe.ContestContent, error)
}
