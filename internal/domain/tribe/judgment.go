package tribe

import (
	"errors"
	"time"
)

var ErrInvalidPlea = errors.New("plea choice out of range")

// FinalPleas are the canned closing arguments offered to the player. The
// choice is flavor only; it never influences the verdict.
var FinalPleas = []string{
	"I will use it to support my family.",
	"I will use it to chase a dream.",
	"I will use it for whatever I want - it's my money.",
}

// JudgmentService resolves the final tribal council between the player and
// the last remaining opponent. The jury is present for the record only: the
// verdict is a single fair coin flip, not a weighted jury vote.
type JudgmentService struct{}

type JudgmentResult struct {
	Winner   string
	Approved bool
	Plea     string
}

// Resolve returns the sole survivor. plea is 1-based into FinalPleas.
func (JudgmentService) Resolve(player, opponent Agent, jury []Agent, plea int, rng Rand) (JudgmentResult, error) {
	if plea < 1 || plea > len(FinalPleas) {
		return JudgmentResult{}, ErrInvalidPlea
	}
	_ = jury // names only; individual stats are never read

	approved := rng.Intn(2) == 0
	winner := opponent.Name
	if approved {
		winner = player.Name
	}
	return JudgmentResult{
		Winner:   winner,
		Approved: approved,
		Plea:     FinalPleas[plea-1],
	}, nil
}

// SettleVerdict records the verdict on the aggregate and closes the game.
func (SettlementService) SettleVerdict(state GameState, verdict JudgmentResult, now time.Time) (GameState, []DomainEvent) {
	next := state
	next.Winner = verdict.Winner
	next.Phase = PhaseFinished
	finishTurn(&next, now)

	return next, []DomainEvent{{
		Type:       "final_verdict",
		OccurredAt: now,
		Payload: map[string]any{
			"winner":   verdict.Winner,
			"approved": verdict.Approved,
			"plea":     verdict.Plea,
			"jury":     mateNames(state.Jury),
		},
	}}
}
