package model

import "time"

// GameSession stores the whole game aggregate as one JSON document guarded
// by an optimistic version column. The aggregate is small and always read
// and written as a unit, so per-field columns would buy nothing.
type GameSession struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	GameID    string    `gorm:"column:game_id;uniqueIndex"`
	State     []byte    `gorm:"column:state"`
	Version   int64     `gorm:"column:version"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (GameSession) TableName() string { return "game_sessions" }

type GameCredential struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	GameID    string    `gorm:"column:game_id;uniqueIndex"`
	KeySalt   []byte    `gorm:"column:key_salt"`
	KeyHash   []byte    `gorm:"column:key_hash"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (GameCredential) TableName() string { return "game_credentials" }

type TurnExecution struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	GameID         string    `gorm:"column:game_id;uniqueIndex:ux_turn_executions_game_key"`
	IdempotencyKey string    `gorm:"column:idempotency_key;uniqueIndex:ux_turn_executions_game_key"`
	IntentType     string    `gorm:"column:intent_type"`
	ResultCode     string    `gorm:"column:result_code"`
	UpdatedState   []byte    `gorm:"column:updated_state"`
	Events         []byte    `gorm:"column:events"`
	AppliedAt      time.Time `gorm:"column:applied_at"`
}

func (TurnExecution) TableName() string { return "turn_executions" }

type DomainEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	GameID     string    `gorm:"column:game_id;index"`
	Type       string    `gorm:"column:type"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
	Payload    []byte    `gorm:"column:payload"`
}

func (DomainEvent) TableName() string { return "domain_events" }
