package stateview

import (
	"time"

	"castaway/internal/domain/tribe"
)

// View is the client-facing projection of the game aggregate. Pending
// contest tickets are stripped of their answers before leaving the server.
type View struct {
	GameID  string           `json:"game_id"`
	Day     int              `json:"day"`
	Phase   tribe.GamePhase  `json:"phase"`
	Player  tribe.Agent      `json:"player"`
	Tribe   []tribe.Agent    `json:"tribe"`
	Jury    []string         `json:"jury"`
	Actions tribe.DayActions `json:"actions"`
	Contest *ContestView     `json:"contest,omitempty"`
	Revote  []string         `json:"revote_candidates,omitempty"`
	Winner  string           `json:"winner,omitempty"`
}

type ContestView struct {
	Kind     tribe.ContestKind `json:"kind"`
	Prompt   string            `json:"prompt"`
	IssuedAt time.Time         `json:"issued_at"`
}

func From(state tribe.GameState) View {
	v := View{
		GameID:  state.GameID,
		Day:     state.Day,
		Phase:   state.Phase,
		Player:  state.Player,
		Tribe:   state.Tribe,
		Jury:    make([]string, 0, len(state.Jury)),
		Actions: state.Actions,
		Winner:  state.Winner,
	}
	for _, member := range state.Jury {
		v.Jury = append(v.Jury, member.Name)
	}
	if state.Contest != nil {
		v.Contest = &ContestView{
			Kind:     state.Contest.Kind,
			Prompt:   state.Contest.Prompt,
			IssuedAt: state.Contest.IssuedAt,
		}
	}
	if state.Council != nil {
		v.Revote = state.Council.TiedCandidates
	}
	return v
}
