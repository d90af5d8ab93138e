package tribe

import (
	"errors"
	"testing"
)

func TestInitialBallot_HighStandingDoubleWeight(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	player := testPlayer(80, 90)
	mates := testMates("A", "B", "C")

	// Mates vote in roster order among the other mates:
	// A picks B ([B C][0]), B picks A ([A C][0]), C picks A ([A B][0]).
	rng := &scriptRand{ints: []int{0, 0, 0}}
	out, err := svc.InitialBallot(player, mates, "A", rng)
	if err != nil {
		t.Fatalf("InitialBallot error: %v", err)
	}
	if out.Tally["A"] < 2 {
		t.Fatalf("expected weight-2 player ballot on A, tally %v", out.Tally)
	}
	if out.Eliminated != "A" {
		t.Fatalf("expected A eliminated, got %q (tally %v)", out.Eliminated, out.Tally)
	}
	if len(out.TiedCandidates) != 0 {
		t.Fatalf("single strict maximum must not enter the revote path")
	}
	if out.Tally["P"] != 0 {
		t.Fatalf("player bucket must stay empty without the low-standing rule, tally %v", out.Tally)
	}
}

func TestInitialBallot_NormalWeightAt75(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	player := testPlayer(75, 90) // threshold is strict: 75 is still weight 1
	mates := testMates("A", "B")

	// A has only B to vote for, B only A.
	rng := &scriptRand{ints: []int{0, 0}}
	out, err := svc.InitialBallot(player, mates, "A", rng)
	if err != nil {
		t.Fatalf("InitialBallot error: %v", err)
	}
	if out.Tally["A"] != 2 { // player weight 1 + B's ballot
		t.Fatalf("expected tally A=2 with weight-1 ballot, got %v", out.Tally)
	}
}

func TestInitialBallot_TieTriggersRevoteCandidates(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	player := testPlayer(50, 90)
	mates := testMates("A", "B", "C")

	// P votes A. A picks C ([B C][1]), B picks C ([A C][1]), C picks A ([A B][0]).
	// Tally: A=2, C=2, B=0 -> tie {A, C}.
	rng := &scriptRand{ints: []int{1, 1, 0}}
	out, err := svc.InitialBallot(player, mates, "A", rng)
	if err != nil {
		t.Fatalf("InitialBallot error: %v", err)
	}
	if out.Eliminated != "" {
		t.Fatalf("expected a tie, got elimination of %q", out.Eliminated)
	}
	if len(out.TiedCandidates) != 2 || out.TiedCandidates[0] != "A" || out.TiedCandidates[1] != "C" {
		t.Fatalf("expected tied candidates [A C], got %v", out.TiedCandidates)
	}
}

func TestRevote_RestrictedToCandidates(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	player := testPlayer(50, 90)
	mates := testMates("A", "B", "C")

	rng := &scriptRand{ints: []int{0, 0, 0}} // all mates pick A
	out, err := svc.Revote(player, mates, []string{"A", "C"}, "C", rng)
	if err != nil {
		t.Fatalf("Revote error: %v", err)
	}
	for name := range out.Tally {
		if name != "A" && name != "C" {
			t.Fatalf("revote tally leaked non-candidate %q: %v", name, out.Tally)
		}
	}
	if out.Eliminated != "A" {
		t.Fatalf("expected A eliminated (3 mate ballots vs 1), got %q", out.Eliminated)
	}
	if out.TieBroken {
		t.Fatalf("unique revote winner must not be marked tie-broken")
	}
}

func TestRevote_SelfVoteAllowedByDefault(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	player := testPlayer(50, 90)
	mates := testMates("A", "B")

	// Candidates {A, B}; with self-votes allowed, mate A may pick A.
	rng := &scriptRand{ints: []int{0, 0}} // A picks A, B picks A
	out, err := svc.Revote(player, mates, []string{"A", "B"}, "A", rng)
	if err != nil {
		t.Fatalf("Revote error: %v", err)
	}
	if out.Tally["A"] != 3 {
		t.Fatalf("expected A=3 with self-vote allowed, got %v", out.Tally)
	}
}

func TestRevote_SelfVoteExcludedWhenConfigured(t *testing.T) {
	svc := CouncilService{Config: CouncilConfig{AllowSelfVoteOnRevote: false}}
	player := testPlayer(50, 90)
	mates := testMates("A", "B")

	// With self-votes barred, A can only pick B and B only A.
	rng := &scriptRand{ints: []int{0, 0}}
	out, err := svc.Revote(player, mates, []string{"A", "B"}, "A", rng)
	if err != nil {
		t.Fatalf("Revote error: %v", err)
	}
	if out.Tally["A"] != 2 || out.Tally["B"] != 1 {
		t.Fatalf("expected A=2 B=1 with self-votes barred, got %v", out.Tally)
	}
}

func TestRevote_SecondTieBreaksRandomly(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	player := testPlayer(50, 90)
	mates := testMates("A", "B", "C")

	// P votes A (1). Mates: C, C, A -> A=2, C=2 -> random break picks index 1 = C.
	rng := &scriptRand{ints: []int{1, 1, 0, 1}}
	out, err := svc.Revote(player, mates, []string{"A", "C"}, "A", rng)
	if err != nil {
		t.Fatalf("Revote error: %v", err)
	}
	if !out.TieBroken {
		t.Fatalf("expected random tie-break")
	}
	if out.Eliminated != "C" {
		t.Fatalf("expected scripted break to pick C, got %q", out.Eliminated)
	}
}

func TestInitialBallot_LowStandingInflation(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	mates := testMates("A", "B")

	for extra := 0; extra < 3; extra++ {
		player := testPlayer(29, 90)
		// A->B, B->A, then inflation draw.
		rng := &scriptRand{ints: []int{0, 0, extra}}
		out, err := svc.InitialBallot(player, mates, "A", rng)
		if err != nil {
			t.Fatalf("InitialBallot error: %v", err)
		}
		got := out.Tally[player.Name]
		if got != 1+extra {
			t.Fatalf("expected %d inflated self-votes, got %d (tally %v)", 1+extra, got, out.Tally)
		}
		if got < 1 || got > 3 {
			t.Fatalf("inflation must stay in [1,3], got %d", got)
		}
	}
}

func TestInitialBallot_NoInflationAtThreshold(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	player := testPlayer(30, 90)
	mates := testMates("A", "B")

	rng := &scriptRand{ints: []int{0, 0, 2}}
	out, err := svc.InitialBallot(player, mates, "A", rng)
	if err != nil {
		t.Fatalf("InitialBallot error: %v", err)
	}
	if out.Tally[player.Name] != 0 {
		t.Fatalf("standing 30 must not inflate, tally %v", out.Tally)
	}
}

func TestForcedOut_RequiresBothStatsLow(t *testing.T) {
	svc := CouncilService{}
	cases := []struct {
		standing, vitality int
		coin               int
		want               bool
	}{
		{5, 5, 0, true},
		{5, 5, 1, false},
		{10, 10, 0, true},
		{5, 50, 0, false},
		{50, 5, 0, false},
	}
	for _, c := range cases {
		player := testPlayer(c.standing, c.vitality)
		rng := &scriptRand{ints: []int{c.coin}}
		if got := svc.ForcedOut(player, rng); got != c.want {
			t.Fatalf("ForcedOut(standing=%d vitality=%d coin=%d) = %v, want %v",
				c.standing, c.vitality, c.coin, got, c.want)
		}
	}
}

func TestForcedOut_FairCoinDistribution(t *testing.T) {
	svc := CouncilService{}
	player := testPlayer(5, 5)
	rng := NewRand(13)

	out := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		if svc.ForcedOut(player, rng) {
			out++
		}
	}
	if out < trials*2/5 || out > trials*3/5 {
		t.Fatalf("forced elimination rate %d/%d far from a fair coin", out, trials)
	}
}

func TestInitialBallot_RejectsInvalidBallot(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	player := testPlayer(50, 90)
	mates := testMates("A", "B")

	if _, err := svc.InitialBallot(player, mates, "P", &scriptRand{}); !errors.Is(err, ErrInvalidBallot) {
		t.Fatalf("self-vote in the initial pass must be rejected, got %v", err)
	}
	if _, err := svc.InitialBallot(player, mates, "Zed", &scriptRand{}); !errors.Is(err, ErrInvalidBallot) {
		t.Fatalf("unknown name must be rejected, got %v", err)
	}
}

func TestInitialBallot_EmptyTribeIsFatal(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	if _, err := svc.InitialBallot(testPlayer(50, 90), nil, "A", &scriptRand{}); !errors.Is(err, ErrNoTribe) {
		t.Fatalf("expected ErrNoTribe, got %v", err)
	}
}

func TestRunCouncil_EliminatesWithinCandidateSet(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	rng := NewRand(21)

	for trial := 0; trial < 200; trial++ {
		player := testPlayer(80, 90)
		mates := testMates("A", "B", "C")
		selector := SelectorFunc(func(candidates []string) (string, error) {
			return candidates[0], nil
		})

		result, err := svc.RunCouncil(player, mates, selector, rng)
		if err != nil {
			t.Fatalf("RunCouncil error: %v", err)
		}
		switch result.Eliminated {
		case "A", "B", "C":
		default:
			t.Fatalf("eliminated %q outside the candidate set", result.Eliminated)
		}
		if result.PlayerOut {
			t.Fatalf("player with standing 80 must not self-eliminate here")
		}
	}
}

func TestRunCouncil_ForcedBypassesBalloting(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	player := testPlayer(5, 5)
	mates := testMates("A", "B")

	selectorCalled := false
	selector := SelectorFunc(func(candidates []string) (string, error) {
		selectorCalled = true
		return candidates[0], nil
	})

	rng := &scriptRand{ints: []int{0}} // coin says out
	result, err := svc.RunCouncil(player, mates, selector, rng)
	if err != nil {
		t.Fatalf("RunCouncil error: %v", err)
	}
	if !result.Forced || !result.PlayerOut {
		t.Fatalf("expected forced player elimination, got %+v", result)
	}
	if selectorCalled {
		t.Fatalf("forced elimination must bypass ballot collection")
	}
	if result.InitialTally != nil {
		t.Fatalf("no tally may be constructed on the forced path")
	}
}

func TestRunCouncil_SelectorErrorPropagates(t *testing.T) {
	svc := CouncilService{Config: DefaultCouncilConfig()}
	wantErr := errors.New("selector offline")
	selector := SelectorFunc(func([]string) (string, error) { return "", wantErr })

	_, err := svc.RunCouncil(testPlayer(50, 90), testMates("A", "B"), selector, NewRand(3))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected selector error, got %v", err)
	}
}
