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

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) GameRepo {
	return GameRepo{db: db}
}

func (r GameRepo) GetByGameID(ctx context.Context, gameID string) (tribe.GameState, error) {
	var m model.GameSession
	if err := getDBFromCtx(ctx, r.db).Where("game_id = ?", gameID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tribe.GameState{}, ports.ErrNotFound
		}
		return tribe.GameState{}, err
	}

	var state tribe.GameState
	if err := json.Unmarshal(m.State, &state); err != nil {
		return tribe.GameState{}, err
	}
	// The version column is authoritative; the blob copy is informational.
	state.Version = m.Version
	return state, nil
}

func (r GameRepo) SaveWithVersion(ctx context.Context, state tribe.GameState, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}

	if expectedVersion == 0 {
		m := model.GameSession{
			GameID:    state.GameID,
			State:     blob,
			Version:   state.Version,
			UpdatedAt: state.UpdatedAt,
		}
		return db.Create(&m).Error
	}

	res := db.Model(&model.GameSession{}).
		Where("game_id = ? AND version = ?", state.GameID, expectedVersion).
		Updates(map[string]any{
			"state":      blob,
			"version":    state.Version,
			"updated_at": state.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
