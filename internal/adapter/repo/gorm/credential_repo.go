package gormrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"castaway/internal/adapter/repo/gorm/model"
	"castaway/internal/app/ports"

	"gorm.io/gorm"
)

type GameCredentialRepo struct {
	db *gorm.DB
}

func NewGameCredentialRepo(db *gorm.DB) GameCredentialRepo {
	return GameCredentialRepo{db: db}
}

func (r GameCredentialRepo) Create(ctx context.Context, credential ports.GameCredentialRecord) error {
	row := model.GameCredential{
		GameID:    credential.GameID,
		KeySalt:   credential.KeySalt,
		KeyHash:   credential.KeyHash,
		Status:    credential.Status,
		CreatedAt: credential.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r GameCredentialRepo) GetByGameID(ctx context.Context, gameID string) (ports.GameCredentialRecord, error) {
	var row model.GameCredential
	if err := getDBFromCtx(ctx, r.db).Where(&model.GameCredential{GameID: gameID}).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.GameCredentialRecord{}, ports.ErrNotFound
		}
		return ports.GameCredentialRecord{}, err
	}
	return ports.GameCredentialRecord{
		GameID:    row.GameID,
		KeySalt:   row.KeySalt,
		KeyHash:   row.KeyHash,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
