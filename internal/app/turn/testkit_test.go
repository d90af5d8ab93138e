package turn

import (
	"context"
	"fmt"
	"time"

	"castaway/internal/app/ports"
	"castaway/internal/domain/tribe"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memGameRepo struct {
	states  map[string]tribe.GameState
	saveErr error
}

func newMemGameRepo(states ...tribe.GameState) *memGameRepo {
	repo := &memGameRepo{states: make(map[string]tribe.GameState)}
	for _, s := range states {
		repo.states[s.GameID] = s
	}
	return repo
}

func (r *memGameRepo) GetByGameID(_ context.Context, gameID string) (tribe.GameState, error) {
	state, ok := r.states[gameID]
	if !ok {
		return tribe.GameState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r *memGameRepo) SaveWithVersion(_ context.Context, state tribe.GameState, expectedVersion int64) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	current, ok := r.states[state.GameID]
	if ok && current.Version != expectedVersion {
		return ports.ErrConflict
	}
	if !ok && expectedVersion != 0 {
		return ports.ErrConflict
	}
	r.states[state.GameID] = state
	return nil
}

type memTurnRepo struct {
	records map[string]ports.TurnExecutionRecord
}

func newMemTurnRepo() *memTurnRepo {
	return &memTurnRepo{records: make(map[string]ports.TurnExecutionRecord)}
}

func execKey(gameID, key string) string {
	return fmt.Sprintf("%s/%s", gameID, key)
}

func (r *memTurnRepo) GetByIdempotencyKey(_ context.Context, gameID, key string) (*ports.TurnExecutionRecord, error) {
	record, ok := r.records[execKey(gameID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &record, nil
}

func (r *memTurnRepo) SaveExecution(_ context.Context, execution ports.TurnExecutionRecord) error {
	r.records[execKey(execution.GameID, execution.IdempotencyKey)] = execution
	return nil
}

type memEventRepo struct {
	events map[string][]tribe.DomainEvent
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[string][]tribe.DomainEvent)}
}

func (r *memEventRepo) Append(_ context.Context, gameID string, events []tribe.DomainEvent) error {
	r.events[gameID] = append(r.events[gameID], events...)
	return nil
}

func (r *memEventRepo) ListByGameID(_ context.Context, gameID string, limit int) ([]tribe.DomainEvent, error) {
	all := r.events[gameID]
	if limit > 0 && limit < len(all) {
		all = all[len(all)-limit:]
	}
	return all, nil
}

type fakeContent struct {
	content tribe.ContestContent
	err     error
}

func (f fakeContent) Content(context.Context) (tribe.ContestContent, error) {
	return f.content, f.err
}

type fakeMetrics struct {
	successes []tribe.ResultCode
	conflicts int
	failures  int
}

func (m *fakeMetrics) RecordSuccess(code tribe.ResultCode) { m.successes = append(m.successes, code) }
func (m *fakeMetrics) RecordConflict()                     { m.conflicts++ }
func (m *fakeMetrics) RecordFailure()                      { m.failures++ }

// scriptRand feeds deterministic sequences into the randomized rules.
type scriptRand struct {
	ints   []int
	floats []float64
}

func (r *scriptRand) Intn(n int) int {
	if n <= 0 {
		panic("Intn called with non-positive n")
	}
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func testMates(names ...string) []tribe.Agent {
	mates := make([]tribe.Agent, 0, len(names))
	for _, name := range names {
		mates = append(mates, tribe.Agent{
			Name:        name,
			Vitality:    70,
			VitalityMax: 100,
			Standing:    50,
		})
	}
	return mates
}

func testState(phase tribe.GamePhase, standing, vitality int, mates []tribe.Agent) tribe.GameState {
	return tribe.GameState{
		GameID: "game-1",
		Day:    1,
		Player: tribe.Agent{
			Name:        "P",
			Vitality:    vitality,
			VitalityMax: 100,
			Standing:    standing,
			IsPlayer:    true,
		},
		Tribe:   mates,
		Jury:    []tribe.Agent{},
		Phase:   phase,
		Version: 1,
	}
}

func testUseCase(repo *memGameRepo, rng tribe.Rand) (UseCase, *memTurnRepo, *memEventRepo, *fakeMetrics) {
	turnRepo := newMemTurnRepo()
	eventRepo := newMemEventRepo()
	metrics := &fakeMetrics{}
	uc := UseCase{
		TxManager: fakeTxManager{},
		GameRepo:  repo,
		TurnRepo:  turnRepo,
		EventRepo: eventRepo,
		Content: fakeContent{content: tribe.ContestContent{
			Traits:   []string{"Smart", "Moody"},
			Riddles:  []tribe.QA{{Prompt: "riddle?", Answer: "echo"}},
			Puzzles:  []tribe.QA{{Prompt: "puzzle?", Answer: "seven"}},
			Anagrams: []tribe.Anagram{{Phrase: "sole survivor", Scrambled: "vors loisevur"}},
		}},
		Metrics:  metrics,
		Council:  tribe.CouncilService{Config: tribe.DefaultCouncilConfig()},
		Rand:     rng,
		Now:      fixedNow,
	}
	return uc, turnRepo, eventRepo, metrics
}
