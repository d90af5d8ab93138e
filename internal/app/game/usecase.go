package game

import (
	"context"
	"errors"
	"strings"
	"time"

	"castaway/internal/app/auth"
	"castaway/internal/app/ports"
	"castaway/internal/app/shared/stateview"
	"castaway/internal/domain/tribe"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid create request")

type CreateRequest struct {
	Hero string
}

type CreateResponse struct {
	GameID  string         `json:"game_id"`
	GameKey string         `json:"game_key"`
	State   stateview.View `json:"state"`
}

// CreateUseCase starts a new session: the chosen preset becomes the
// controlled agent, a fresh tribe is generated, and a secret game key is
// minted for subsequent calls.
type CreateUseCase struct {
	TxManager   ports.TxManager
	GameRepo    ports.GameRepository
	Credentials ports.GameCredentialRepository
	Traits      tribe.TraitTable
	Rand        tribe.Rand
	Now         func() time.Time
}

func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	if u.TxManager == nil || u.GameRepo == nil || u.Credentials == nil || u.Rand == nil {
		return CreateResponse{}, ErrInvalidRequest
	}
	preset, err := tribe.PresetByName(strings.TrimSpace(req.Hero))
	if err != nil {
		return CreateResponse{}, err
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()

	gameID := "game_" + uuid.NewString()
	cred, err := auth.NewCredential()
	if err != nil {
		return CreateResponse{}, err
	}

	state := tribe.NewGame(gameID, preset, u.Traits, u.Rand)
	state.UpdatedAt = now

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Credentials.Create(txCtx, ports.GameCredentialRecord{
			GameID:    gameID,
			KeySalt:   cred.Salt,
			KeyHash:   cred.Hash,
			Status:    auth.CredentialStatusActive,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		return u.GameRepo.SaveWithVersion(txCtx, state, 0)
	})
	if err != nil {
		return CreateResponse{}, err
	}

	return CreateResponse{
		GameID:  gameID,
		GameKey: cred.Key,
		State:   stateview.From(state),
	}, nil
}
