package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"castaway/internal/adapter/repo/gorm/model"
	"castaway/internal/app/ports"
	"castaway/internal/domain/tribe"

	"gorm.io/gorm"
)

type TurnExecutionRepo struct {
	db *gorm.DB
}

func NewTurnExecutionRepo(db *gorm.DB) TurnExecutionRepo {
	return TurnExecutionRepo{db: db}
}

func (r TurnExecutionRepo) GetByIdempotencyKey(ctx context.Context, gameID, key string) (*ports.TurnExecutionRecord, error) {
	var m model.TurnExecution
	err := getDBFromCtx(ctx, r.db).
		Where(&model.TurnExecution{GameID: gameID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.TurnExecutionRecord{
		GameID:         m.GameID,
		IdempotencyKey: m.IdempotencyKey,
		Kind:           m.IntentType,
		Result:         decodeResult(m),
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r TurnExecutionRepo) SaveExecution(ctx context.Context, execution ports.TurnExecutionRecord) error {
	stateJSON, _ := json.Marshal(execution.Result.UpdatedState)
	eventsJSON, _ := json.Marshal(execution.Result.Events)
	m := model.TurnExecution{
		GameID:         execution.GameID,
		IdempotencyKey: execution.IdempotencyKey,
		IntentType:     execution.Kind,
		ResultCode:     string(execution.Result.ResultCode),
		UpdatedState:   stateJSON,
		Events:         eventsJSON,
		AppliedAt:      execution.AppliedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

func decodeResult(m model.TurnExecution) ports.TurnResult {
	var state tribe.GameState
	var events []tribe.DomainEvent
	_ = json.Unmarshal(m.UpdatedState, &state)
	_ = json.Unmarshal(m.Events, &events)
	return ports.TurnResult{
		UpdatedState: state,
		Events:       events,
		ResultCode:   tribe.ResultCode(m.ResultCode),
	}
}
