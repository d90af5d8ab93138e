package turn

import (
	"castaway/internal/app/shared/stateview"
	"castaway/internal/domain/tribe"
)

type IntentType string

const (
	IntentRest      IntentType = "rest"
	IntentExplore   IntentType = "explore"
	IntentChallenge IntentType = "challenge"
	IntentAnswer    IntentType = "answer"
	IntentForfeit   IntentType = "forfeit"
	IntentVote      IntentType = "vote"
	IntentPlea      IntentType = "plea"
)

type Intent struct {
	Type   IntentType `json:"type"`
	Answer string     `json:"answer,omitempty"`
	Target string     `json:"target,omitempty"`
	Plea   int        `json:"plea,omitempty"`
}

type Request struct {
	GameID         string
	IdempotencyKey string
	Intent         Intent
}

type Response struct {
	State          stateview.View      `json:"state"`
	Events         []tribe.DomainEvent `json:"events"`
	ResultCode     tribe.ResultCode    `json:"result_code"`
	VoteCandidates []string            `json:"vote_candidates,omitempty"`
	Eliminated     string              `json:"eliminated,omitempty"`
	Winner         string              `json:"winner,omitempty"`
}
