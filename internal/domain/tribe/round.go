package tribe

import "time"

const (
	contestRewardStanding  = 25
	contestRewardVitality  = 25
	contestPenaltyStanding = -10
	contestPenaltyVitality = -10

	restVitalityCap     = 20
	restStandingCost    = 25
	caughtStandingCost  = 20
	allianceStandingWin = 10
	wanderVitalityCost  = 10
)

// SettlementService applies the per-turn stat rules to the game aggregate
// and emits the domain events describing what happened. All methods take
// the state by value and return the updated copy with Version bumped.
type SettlementService struct{}

// IssueContest pins the day's contest on the aggregate and starts the
// response window.
func (SettlementService) IssueContest(state GameState, ticket ContestTicket, now time.Time) (GameState, []DomainEvent) {
	next := state
	next.Contest = &ticket
	next.Phase = PhaseContest
	finishTurn(&next, now)

	return next, []DomainEvent{{
		Type:       "contest_issued",
		OccurredAt: now,
		Payload:    map[string]any{"kind": string(ticket.Kind), "day": next.Day},
	}}
}

// SettleContest applies the uniform reward/penalty policy. Only the player
// is affected by a contest; tribe mates' stats move only through votes.
func (SettlementService) SettleContest(state GameState, success bool, now time.Time) (GameState, []DomainEvent) {
	next := state
	if success {
		next.Player.ApplyStanding(contestRewardStanding)
		next.Player.ApplyVitality(contestRewardVitality)
	} else {
		next.Player.ApplyStanding(contestPenaltyStanding)
		next.Player.ApplyVitality(contestPenaltyVitality)
	}
	next.Actions.Challenged = true
	next.Contest = nil
	next.Phase = PhaseCouncil
	finishTurn(&next, now)

	kind := ""
	if state.Contest != nil {
		kind = string(state.Contest.Kind)
	}
	return next, []DomainEvent{{
		Type:       "contest_settled",
		OccurredAt: now,
		Payload: map[string]any{
			"kind":     kind,
			"success":  success,
			"vitality": next.Player.Vitality,
			"standing": next.Player.Standing,
		},
	}}
}

// SettleForfeit applies the forfeit penalties: a vitality cut proportional
// to current vitality, between 10% and 30%, and a flat standing loss
// between 5 and 15.
func (SettlementService) SettleForfeit(state GameState, rng Rand, now time.Time) (GameState, []DomainEvent) {
	next := state
	vitalityPenalty := int(float64(next.Player.Vitality) * (0.1 + 0.2*rng.Float64()))
	standingPenalty := 5 + rng.Intn(11)
	next.Player.ApplyVitality(-vitalityPenalty)
	next.Player.ApplyStanding(-standingPenalty)
	next.Actions.Challenged = true
	next.Contest = nil
	next.Phase = PhaseCouncil
	finishTurn(&next, now)

	return next, []DomainEvent{{
		Type:       "contest_forfeited",
		OccurredAt: now,
		Payload: map[string]any{
			"vitality_penalty": vitalityPenalty,
			"standing_penalty": standingPenalty,
			"vitality":         next.Player.Vitality,
			"standing":         next.Player.Standing,
		},
	}}
}

// SettleRest restores up to 20 vitality at the cost of 25 standing.
func (SettlementService) SettleRest(state GameState, now time.Time) (GameState, []DomainEvent) {
	next := state
	restored := next.Player.VitalityMax - next.Player.Vitality
	if restored > restVitalityCap {
		restored = restVitalityCap
	}
	next.Player.ApplyVitality(restored)
	next.Player.ApplyStanding(-restStandingCost)
	next.Actions.Rested = true
	finishTurn(&next, now)

	return next, []DomainEvent{{
		Type:       "rested",
		OccurredAt: now,
		Payload: map[string]any{
			"restored": restored,
			"vitality": next.Player.Vitality,
			"standing": next.Player.Standing,
		},
	}}
}

// SettleExplore resolves a jungle wander: the player may find an idol,
// get caught searching, strike an alliance, or come back with nothing.
func (SettlementService) SettleExplore(state GameState, rng Rand, now time.Time) (GameState, []DomainEvent) {
	next := state
	outcome := [...]string{"idol", "caught", "nothing", "alliance"}[rng.Intn(4)]

	switch outcome {
	case "idol":
		if !next.Player.HasIdol {
			next.Player.HasIdol = true
			next.Player.Inventory = append(next.Player.Inventory, "Hidden Immunity Idol")
			next.Player.ApplyVitality(next.Player.VitalityMax)
		}
	case "caught":
		next.Player.ApplyStanding(-caughtStandingCost)
	case "alliance":
		next.Player.ApplyStanding(allianceStandingWin)
	default:
		next.Player.ApplyVitality(-wanderVitalityCost)
	}
	next.Actions.Explored = true
	finishTurn(&next, now)

	return next, []DomainEvent{{
		Type:       "explored",
		OccurredAt: now,
		Payload: map[string]any{
			"outcome":  outcome,
			"vitality": next.Player.Vitality,
			"standing": next.Player.Standing,
			"has_idol": next.Player.HasIdol,
		},
	}}
}

// SettleForcedOut ends the game after the pre-vote guard eliminated the
// player outright. No tally was constructed.
func (SettlementService) SettleForcedOut(state GameState, now time.Time) (GameState, []DomainEvent) {
	next := state
	next.Phase = PhaseFinished
	next.Council = nil
	finishTurn(&next, now)

	return next, []DomainEvent{{
		Type:       "forced_elimination",
		OccurredAt: now,
		Payload:    map[string]any{"eliminated": next.Player.Name},
	}}
}

// SettleElimination applies a resolved council vote: the eliminated mate
// leaves the tribe for the jury, the day advances, and per-day action flags
// reset. With one mate left the game moves to the finale; an eliminated
// player ends the game.
func (SettlementService) SettleElimination(state GameState, eliminated string, now time.Time) (GameState, []DomainEvent) {
	next := state
	next.Council = nil

	if eliminated == next.Player.Name {
		next.Phase = PhaseFinished
		finishTurn(&next, now)
		return next, []DomainEvent{{
			Type:       "player_voted_out",
			OccurredAt: now,
			Payload:    map[string]any{"eliminated": eliminated, "day": state.Day},
		}}
	}

	mate, ok := next.RemoveMate(eliminated)
	if ok {
		next.Jury = append(next.Jury, mate)
	}
	next.Day++
	next.Actions = DayActions{}
	if len(next.Tribe) <= 1 {
		next.Phase = PhaseFinale
	} else {
		next.Phase = PhaseCamp
	}
	finishTurn(&next, now)

	return next, []DomainEvent{{
		Type:       "mate_voted_out",
		OccurredAt: now,
		Payload: map[string]any{
			"eliminated": eliminated,
			"day":        state.Day,
			"tribe_left": len(next.Tribe),
		},
	}}
}

func finishTurn(state *GameState, now time.Time) {
	state.Version++
	state.UpdatedAt = now
}
