package turn

import (
	"context"
	"errors"
	"strings"
	"time"

	"castaway/internal/app/ports"
	"castaway/internal/app/shared/stateview"
	"castaway/internal/domain/tribe"
)

var (
	ErrInvalidRequest     = errors.New("invalid turn request")
	ErrWrongPhase         = errors.New("intent not allowed in the current phase")
	ErrActionAlreadyTaken = errors.New("action already taken today")
	ErrGameFinished       = errors.New("game is finished")
)

// UseCase applies one player turn to the game aggregate inside a single
// transaction: idempotency lookup, load, settle, versioned save, event
// append. Every randomized rule draws from the injected Rand, which is why
// retries must replay the recorded execution instead of re-rolling.
type UseCase struct {
	TxManager ports.TxManager
	GameRepo  ports.GameRepository
	TurnRepo  ports.TurnExecutionRepository
	EventRepo ports.EventRepository
	Content   ports.ContestContentProvider
	Metrics   ports.TurnMetrics
	Settle    tribe.SettlementService
	Council   tribe.CouncilService
	Judgment  tribe.JudgmentService
	Rand      tribe.Rand
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.GameID = strings.TrimSpace(req.GameID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.GameID == "" || req.IdempotencyKey == "" || !isSupportedIntent(req.Intent.Type) {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		prior, err := u.TurnRepo.GetByIdempotencyKey(txCtx, req.GameID, req.IdempotencyKey)
		if err == nil && prior != nil {
			out = buildResponse(prior.Result)
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		state, err := u.GameRepo.GetByGameID(txCtx, req.GameID)
		if err != nil {
			return err
		}
		if state.Phase == tribe.PhaseFinished {
			return ErrGameFinished
		}

		result, err := u.settleIntent(txCtx, state, req.Intent, nowFn())
		if err != nil {
			return err
		}

		if err := u.GameRepo.SaveWithVersion(txCtx, result.UpdatedState, state.Version); err != nil {
			return err
		}
		if err := u.TurnRepo.SaveExecution(txCtx, ports.TurnExecutionRecord{
			GameID:         req.GameID,
			IdempotencyKey: req.IdempotencyKey,
			Kind:           string(req.Intent.Type),
			Result:         result,
			AppliedAt:      nowFn(),
		}); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.GameID, result.Events); err != nil {
			return err
		}

		out = buildResponse(result)
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(out.ResultCode)
	}
	return out, nil
}

func (u UseCase) settleIntent(ctx context.Context, state tribe.GameState, intent Intent, now time.Time) (ports.TurnResult, error) {
	switch intent.Type {
	case IntentRest:
		if state.Phase != tribe.PhaseCamp {
			return ports.TurnResult{}, ErrWrongPhase
		}
		if state.Actions.Rested {
			return ports.TurnResult{}, ErrActionAlreadyTaken
		}
		next, events := u.Settle.SettleRest(state, now)
		return ports.TurnResult{UpdatedState: next, Events: events, ResultCode: tribe.ResultOK}, nil

	case IntentExplore:
		if state.Phase != tribe.PhaseCamp {
			return ports.TurnResult{}, ErrWrongPhase
		}
		if state.Actions.Explored {
			return ports.TurnResult{}, ErrActionAlreadyTaken
		}
		next, events := u.Settle.SettleExplore(state, u.Rand, now)
		return ports.TurnResult{UpdatedState: next, Events: events, ResultCode: tribe.ResultOK}, nil

	case IntentChallenge:
		if state.Phase != tribe.PhaseCamp {
			return ports.TurnResult{}, ErrWrongPhase
		}
		if state.Actions.Challenged {
			return ports.TurnResult{}, ErrActionAlreadyTaken
		}
		content, err := u.Content.Content(ctx)
		if err != nil {
			return ports.TurnResult{}, err
		}
		ticket, err := tribe.BuildContest(tribe.RandomContestKind(u.Rand), state.Tribe, content, u.Rand, now)
		if err != nil {
			return ports.TurnResult{}, err
		}
		next, events := u.Settle.IssueContest(state, ticket, now)
		return ports.TurnResult{UpdatedState: next, Events: events, ResultCode: tribe.ResultOK}, nil

	case IntentAnswer:
		if state.Phase != tribe.PhaseContest || state.Contest == nil {
			return ports.TurnResult{}, ErrWrongPhase
		}
		success := state.Contest.Grade(intent.Answer, now)
		next, events := u.Settle.SettleContest(state, success, now)
		return u.openCouncil(next, events, now)

	case IntentForfeit:
		if state.Phase != tribe.PhaseContest {
			return ports.TurnResult{}, ErrWrongPhase
		}
		next, events := u.Settle.SettleForfeit(state, u.Rand, now)
		return u.openCouncil(next, events, now)

	case IntentVote:
		return u.settleVote(state, intent.Target, now)

	case IntentPlea:
		if state.Phase != tribe.PhaseFinale || len(state.Tribe) != 1 {
			return ports.TurnResult{}, ErrWrongPhase
		}
		verdict, err := u.Judgment.Resolve(state.Player, state.Tribe[0], state.Jury, intent.Plea, u.Rand)
		if err != nil {
			return ports.TurnResult{}, err
		}
		next, events := u.Settle.SettleVerdict(state, verdict, now)
		return ports.TurnResult{UpdatedState: next, Events: events, ResultCode: tribe.ResultGameOver}, nil
	}

	return ports.TurnResult{}, ErrInvalidRequest
}

// openCouncil runs the pre-vote forced-elimination guard the moment the
// contest hands off to the council. When the coin falls against the player
// no tally is ever constructed.
func (u UseCase) openCouncil(state tribe.GameState, events []tribe.DomainEvent, now time.Time) (ports.TurnResult, error) {
	if u.Council.ForcedOut(state.Player, u.Rand) {
		next, forcedEvents := u.Settle.SettleForcedOut(state, now)
		return ports.TurnResult{
			UpdatedState: next,
			Events:       append(events, forcedEvents...),
			ResultCode:   tribe.ResultGameOver,
		}, nil
	}
	return ports.TurnResult{UpdatedState: state, Events: events, ResultCode: tribe.ResultOK}, nil
}

func (u UseCase) settleVote(state tribe.GameState, target string, now time.Time) (ports.TurnResult, error) {
	switch state.Phase {
	case tribe.PhaseCouncil:
		outcome, err := u.Council.InitialBallot(state.Player, state.Tribe, target, u.Rand)
		if err != nil {
			return ports.TurnResult{}, err
		}
		events := []tribe.DomainEvent{tallyEvent("initial", outcome, now)}
		if len(outcome.TiedCandidates) > 0 {
			next := state
			next.Council = &tribe.CouncilTicket{
				TiedCandidates: outcome.TiedCandidates,
				InitialTally:   outcome.Tally,
			}
			next.Phase = tribe.PhaseRevote
			next.Version++
			next.UpdatedAt = now
			events = append(events, tribe.DomainEvent{
				Type:       "revote_required",
				OccurredAt: now,
				Payload:    map[string]any{"candidates": outcome.TiedCandidates},
			})
			return ports.TurnResult{UpdatedState: next, Events: events, ResultCode: tribe.ResultRevoteRequired}, nil
		}
		return u.applyElimination(state, outcome.Eliminated, events, now)

	case tribe.PhaseRevote:
		if state.Council == nil {
			return ports.TurnResult{}, ErrWrongPhase
		}
		outcome, err := u.Council.Revote(state.Player, state.Tribe, state.Council.TiedCandidates, target, u.Rand)
		if err != nil {
			return ports.TurnResult{}, err
		}
		events := []tribe.DomainEvent{tallyEvent("revote", outcome, now)}
		return u.applyElimination(state, outcome.Eliminated, events, now)

	default:
		return ports.TurnResult{}, ErrWrongPhase
	}
}

func (u UseCase) applyElimination(state tribe.GameState, eliminated string, events []tribe.DomainEvent, now time.Time) (ports.TurnResult, error) {
	next, settleEvents := u.Settle.SettleElimination(state, eliminated, now)
	code := tribe.ResultOK
	if next.Phase == tribe.PhaseFinished {
		code = tribe.ResultGameOver
	}
	return ports.TurnResult{
		UpdatedState: next,
		Events:       append(events, settleEvents...),
		ResultCode:   code,
	}, nil
}

func tallyEvent(pass string, outcome tribe.BallotOutcome, now time.Time) tribe.DomainEvent {
	payload := map[string]any{
		"pass":  pass,
		"tally": outcome.Tally,
	}
	if outcome.TieBroken {
		payload["tie_broken"] = true
	}
	return tribe.DomainEvent{Type: "votes_tallied", OccurredAt: now, Payload: payload}
}

func buildResponse(result ports.TurnResult) Response {
	resp := Response{
		State:      stateview.From(result.UpdatedState),
		Events:     result.Events,
		ResultCode: result.ResultCode,
		Winner:     result.UpdatedState.Winner,
	}
	switch result.UpdatedState.Phase {
	case tribe.PhaseCouncil:
		resp.VoteCandidates = result.UpdatedState.TribeNames()
	case tribe.PhaseRevote:
		if result.UpdatedState.Council != nil {
			resp.VoteCandidates = result.UpdatedState.Council.TiedCandidates
		}
	}
	for _, e := range result.Events {
		switch e.Type {
		case "mate_voted_out", "player_voted_out", "forced_elimination":
			if name, ok := e.Payload["eliminated"].(string); ok {
				resp.Eliminated = name
			}
		}
	}
	return resp
}

func isSupportedIntent(t IntentType) bool {
	switch t {
	case IntentRest, IntentExplore, IntentChallenge, IntentAnswer, IntentForfeit, IntentVote, IntentPlea:
		return true
	}
	return false
}
