package replay

import (
	"context"
	"errors"
	"strings"

	"castaway/internal/app/ports"
	"castaway/internal/domain/tribe"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const defaultLimit = 100

type Request struct {
	GameID string
	Limit  int
}

type Response struct {
	GameID string              `json:"game_id"`
	Events []tribe.DomainEvent `json:"events"`
}

// UseCase lists the recorded domain events of one game in order, newest
// last. The log is append-only, so the same request always returns a prefix
// of any later response.
type UseCase struct {
	EventRepo ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.GameID = strings.TrimSpace(req.GameID)
	if req.GameID == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	events, err := u.EventRepo.ListByGameID(ctx, req.GameID, limit)
	if err != nil {
		return Response{}, err
	}
	return Response{GameID: req.GameID, Events: events}, nil
}
