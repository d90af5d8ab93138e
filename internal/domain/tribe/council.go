package tribe

import (
	"errors"
	"sort"
)

var (
	ErrInvalidBallot = errors.New("ballot names no eligible candidate")
	ErrNoTribe       = errors.New("council requires a non-empty tribe")
)

// BallotSelector supplies the player's ballot. Implementations must return
// a name from the given candidate list; anything else is rejected with
// ErrInvalidBallot rather than mapped to a default.
type BallotSelector interface {
	SelectVote(candidates []string) (string, error)
}

// SelectorFunc adapts a function to the BallotSelector interface.
type SelectorFunc func(candidates []string) (string, error)

func (f SelectorFunc) SelectVote(candidates []string) (string, error) {
	return f(candidates)
}

// CouncilConfig names the rule-set choices the two original variants
// disagree on. AllowSelfVoteOnRevote follows the canonical variant: tribe
// mates are not barred from voting for themselves in a revote, even though
// they are in the initial pass.
type CouncilConfig struct {
	AllowSelfVoteOnRevote bool
}

func DefaultCouncilConfig() CouncilConfig {
	return CouncilConfig{AllowSelfVoteOnRevote: true}
}

// CouncilService runs the tribal-council vote: weighted player ballot,
// uniform-random mate ballots, tie detection, a single revote, and a random
// tie-break if the revote ties again.
type CouncilService struct {
	Config CouncilConfig
}

// BallotOutcome is the result of one tallying pass. Either Eliminated is
// set, or TiedCandidates lists the names sharing the maximal vote weight.
type BallotOutcome struct {
	Tally          map[string]int `json:"tally"`
	Eliminated     string         `json:"eliminated,omitempty"`
	TiedCandidates []string       `json:"tied_candidates,omitempty"`
	TieBroken      bool           `json:"tie_broken,omitempty"`
}

// CouncilResult is the terminal output of a full council run.
type CouncilResult struct {
	Eliminated   string
	PlayerOut    bool
	Forced       bool
	InitialTally map[string]int
	RevoteTally  map[string]int
	TieBroken    bool
}

const (
	highStandingThreshold = 75
	lowStandingThreshold  = 30
	forcedOutThreshold    = 10
)

// ForcedOut runs the pre-vote guard: a player whose standing and vitality
// have both fallen to 10 or below is eliminated on a fair coin flip, before
// any ballot is collected.
func (CouncilService) ForcedOut(player Agent, rng Rand) bool {
	if player.Standing > forcedOutThreshold || player.Vitality > forcedOutThreshold {
		return false
	}
	return rng.Intn(2) == 0
}

// InitialBallot collects and resolves the first voting pass. The player's
// ballot must name a tribe mate. Tally buckets exist for every tribe mate
// and for the player; mates vote uniformly among the other mates and never
// for the player, so the player's bucket fills only through the
// low-standing inflation rule.
func (s CouncilService) InitialBallot(player Agent, mates []Agent, playerVote string, rng Rand) (BallotOutcome, error) {
	if len(mates) == 0 {
		return BallotOutcome{}, ErrNoTribe
	}
	names := mateNames(mates)
	if !containsName(names, playerVote) {
		return BallotOutcome{}, ErrInvalidBallot
	}

	tally := make(map[string]int, len(names)+1)
	for _, name := range names {
		tally[name] = 0
	}
	tally[player.Name] = 0

	tally[playerVote] += playerBallotWeight(player)

	for _, mate := range mates {
		others := withoutName(names, mate.Name)
		tally[pick(rng, others)]++
	}

	s.inflateLowStanding(tally, player, rng)

	return resolveTally(tally), nil
}

// Revote collects and resolves the second pass, restricted to the tied
// candidates. The player's weight is recomputed from current standing. A
// second tie is broken uniformly at random, so Revote never reports a tie.
func (s CouncilService) Revote(player Agent, mates []Agent, candidates []string, playerVote string, rng Rand) (BallotOutcome, error) {
	if len(candidates) == 0 {
		return BallotOutcome{}, ErrNoTribe
	}
	if !containsName(candidates, playerVote) {
		return BallotOutcome{}, ErrInvalidBallot
	}

	tally := make(map[string]int, len(candidates))
	for _, name := range candidates {
		tally[name] = 0
	}

	tally[playerVote] += playerBallotWeight(player)

	for _, mate := range mates {
		choices := candidates
		if !s.Config.AllowSelfVoteOnRevote {
			if trimmed := withoutName(candidates, mate.Name); len(trimmed) > 0 {
				choices = trimmed
			}
		}
		tally[pick(rng, choices)]++
	}

	// Inflation only applies when the player's bucket exists in this pass.
	if containsName(candidates, player.Name) {
		s.inflateLowStanding(tally, player, rng)
	}

	out := resolveTally(tally)
	if len(out.TiedCandidates) > 0 {
		out.Eliminated = pick(rng, out.TiedCandidates)
		out.TiedCandidates = nil
		out.TieBroken = true
	}
	return out, nil
}

// RunCouncil executes the whole protocol with a programmatic selector:
// forced-elimination guard, initial pass, and on a tie the revote pass with
// the selector re-asked over the restricted candidate set.
func (s CouncilService) RunCouncil(player Agent, mates []Agent, selector BallotSelector, rng Rand) (CouncilResult, error) {
	if len(mates) == 0 {
		return CouncilResult{}, ErrNoTribe
	}
	if s.ForcedOut(player, rng) {
		return CouncilResult{Eliminated: player.Name, PlayerOut: true, Forced: true}, nil
	}

	vote, err := selector.SelectVote(mateNames(mates))
	if err != nil {
		return CouncilResult{}, err
	}
	first, err := s.InitialBallot(player, mates, vote, rng)
	if err != nil {
		return CouncilResult{}, err
	}
	if first.Eliminated != "" {
		return CouncilResult{
			Eliminated:   first.Eliminated,
			PlayerOut:    first.Eliminated == player.Name,
			InitialTally: first.Tally,
		}, nil
	}

	revoteChoice, err := selector.SelectVote(first.TiedCandidates)
	if err != nil {
		return CouncilResult{}, err
	}
	second, err := s.Revote(player, mates, first.TiedCandidates, revoteChoice, rng)
	if err != nil {
		return CouncilResult{}, err
	}
	return CouncilResult{
		Eliminated:   second.Eliminated,
		PlayerOut:    second.Eliminated == player.Name,
		InitialTally: first.Tally,
		RevoteTally:  second.Tally,
		TieBroken:    second.TieBroken,
	}, nil
}

func (CouncilService) inflateLowStanding(tally map[string]int, player Agent, rng Rand) {
	if player.Standing < lowStandingThreshold {
		tally[player.Name] += 1 + rng.Intn(3)
	}
}

func playerBallotWeight(player Agent) int {
	if player.Standing > highStandingThreshold {
		return 2
	}
	return 1
}

// resolveTally finds the maximal bucket(s). Candidate order is sorted so
// that identical Rand scripts resolve identically regardless of map
// iteration order.
func resolveTally(tally map[string]int) BallotOutcome {
	maxVotes := 0
	for _, count := range tally {
		if count > maxVotes {
			maxVotes = count
		}
	}
	leaders := make([]string, 0, 2)
	for name, count := range tally {
		if count == maxVotes {
			leaders = append(leaders, name)
		}
	}
	sort.Strings(leaders)

	if len(leaders) == 1 {
		return BallotOutcome{Tally: tally, Eliminated: leaders[0]}
	}
	return BallotOutcome{Tally: tally, TiedCandidates: leaders}
}

func mateNames(mates []Agent) []string {
	names := make([]string, 0, len(mates))
	for _, mate := range mates {
		names = append(names, mate.Name)
	}
	return names
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func withoutName(names []string, name string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
