package tribe

import "time"

type Agent struct {
	Name        string   `json:"name"`
	Vitality    int      `json:"vitality"`
	VitalityMax int      `json:"vitality_max"`
	Standing    int      `json:"standing"`
	Attributes  []string `json:"attributes"`
	Flaws       []string `json:"flaws"`
	IsPlayer    bool     `json:"is_player"`
	HasIdol     bool     `json:"has_idol"`
	Inventory   []string `json:"inventory,omitempty"`
}

type GamePhase string

const (
	PhaseCamp     GamePhase = "camp"
	PhaseContest  GamePhase = "contest"
	PhaseCouncil  GamePhase = "council"
	PhaseRevote   GamePhase = "revote"
	PhaseFinale   GamePhase = "finale"
	PhaseFinished GamePhase = "finished"
)

// DayActions tracks the once-per-day action policy.
type DayActions struct {
	Rested     bool `json:"rested"`
	Explored   bool `json:"explored"`
	Challenged bool `json:"challenged"`
}

type ContestKind string

const (
	ContestTraitRecall ContestKind = "trait_recall"
	ContestTribeOrder  ContestKind = "tribe_order"
	ContestNumberGuess ContestKind = "number_guess"
	ContestRiddle      ContestKind = "riddle"
	ContestLogic       ContestKind = "logic"
	ContestAnagram     ContestKind = "anagram"
)

// ContestTicket is an issued contest awaiting the player's response.
// Answer and ValidAnswers are persisted with the aggregate but must never
// reach the client; response views strip them (see app/shared/stateview).
type ContestTicket struct {
	Kind         ContestKind `json:"kind"`
	Prompt       string      `json:"prompt"`
	Answer       string      `json:"answer"`
	ValidAnswers []string    `json:"valid_answers,omitempty"`
	IssuedAt     time.Time   `json:"issued_at"`
}

// CouncilTicket is persisted between the initial vote and the revote so a
// tie never re-rolls the initial ballots.
type CouncilTicket struct {
	TiedCandidates []string       `json:"tied_candidates"`
	InitialTally   map[string]int `json:"initial_tally"`
}

type GameState struct {
	GameID    string         `json:"game_id"`
	Day       int            `json:"day"`
	Player    Agent          `json:"player"`
	Tribe     []Agent        `json:"tribe"`
	Jury      []Agent        `json:"jury"`
	Phase     GamePhase      `json:"phase"`
	Actions   DayActions     `json:"actions"`
	Contest   *ContestTicket `json:"contest,omitempty"`
	Council   *CouncilTicket `json:"council,omitempty"`
	Winner    string         `json:"winner,omitempty"`
	Version   int64          `json:"version"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type ResultCode string

const (
	ResultOK             ResultCode = "OK"
	ResultRevoteRequired ResultCode = "REVOTE_REQUIRED"
	ResultGameOver       ResultCode = "GAME_OVER"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// TribeNames returns the names of the not-yet-eliminated tribe mates in
// roster order. Names double as ballot keys, so they are unique per game.
func (s *GameState) TribeNames() []string {
	names := make([]string, 0, len(s.Tribe))
	for _, mate := range s.Tribe {
		names = append(names, mate.Name)
	}
	return names
}

// RemoveMate takes a mate out of the active tribe and returns it. The
// second result is false when no mate carries that name.
func (s *GameState) RemoveMate(name string) (Agent, bool) {
	for i, mate := range s.Tribe {
		if mate.Name == name {
			s.Tribe = append(s.Tribe[:i], s.Tribe[i+1:]...)
			return mate, true
		}
	}
	return Agent{}, false
}
