package inmemory

import (
	"sync"

	"castaway/internal/domain/tribe"
)

type Snapshot struct {
	TurnTotal    uint64            `json:"turn_total"`
	TurnSuccess  uint64            `json:"turn_success"`
	TurnConflict uint64            `json:"turn_conflict"`
	TurnFailure  uint64            `json:"turn_failure"`
	ByResultCode map[string]uint64 `json:"by_result_code"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byResult map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byResult: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(resultCode tribe.ResultCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byResult[string(resultCode)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TurnSuccess:  r.success,
		TurnConflict: r.conflict,
		TurnFailure:  r.failure,
		TurnTotal:    r.success + r.conflict + r.failure,
		ByResultCode: make(map[string]uint64, len(r.byResult)),
	}
	for k, v := range r.byResult {
		out.ByResultCode[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
