package status

import (
	"context"
	"errors"
	"strings"

	"castaway/internal/app/ports"
	"castaway/internal/app/shared/stateview"
	"castaway/internal/domain/tribe"
)

var ErrInvalidRequest = errors.New("invalid status request")

type Response struct {
	State          stateview.View `json:"state"`
	VoteCandidates []string       `json:"vote_candidates,omitempty"`
	Pleas          []string       `json:"pleas,omitempty"`
}

// UseCase reads the current game without mutating it. The response also
// carries the choices the client must pick from next, so a reconnecting
// client can resume mid-council or mid-finale.
type UseCase struct {
	GameRepo ports.GameRepository
}

func (u UseCase) Execute(ctx context.Context, gameID string) (Response, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return Response{}, ErrInvalidRequest
	}

	state, err := u.GameRepo.GetByGameID(ctx, gameID)
	if err != nil {
		return Response{}, err
	}

	resp := Response{State: stateview.From(state)}
	switch state.Phase {
	case tribe.PhaseCouncil:
		resp.VoteCandidates = state.TribeNames()
	case tribe.PhaseRevote:
		if state.Council != nil {
			resp.VoteCandidates = state.Council.TiedCandidates
		}
	case tribe.PhaseFinale:
		resp.Pleas = tribe.FinalPleas
	}
	return resp, nil
}
