package ports

import "castaway/internal/domain/tribe"

type TurnMetrics interface {
	RecordSuccess(resultCode tribe.ResultCode)
	RecordConflict()
	RecordFailure()
}
