package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"castaway/internal/app/auth"
	"castaway/internal/app/game"
	"castaway/internal/app/ports"
	"castaway/internal/app/replay"
	"castaway/internal/app/status"
	"castaway/internal/app/turn"
	"castaway/internal/domain/tribe"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const gameIDHeader = "X-Game-ID"
const gameKeyHeader = "X-Game-Key"

type Handler struct {
	CreateUC game.CreateUseCase
	AuthUC   auth.VerifyUseCase
	TurnUC   turn.UseCase
	StatusUC status.UseCase
	ReplayUC replay.UseCase
	KPI      kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	g := s.Group("/api/game")
	g.POST("/new", h.create)
	g.POST("/turn", h.turn)
	g.POST("/status", h.status)
	g.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type createRequest struct {
	Hero string `json:"hero"`
}

type turnRequest struct {
	IdempotencyKey string      `json:"idempotency_key"`
	Intent         turn.Intent `json:"intent"`
}

func (h Handler) create(c context.Context, ctx *app.RequestContext) {
	var body createRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CreateUC.Execute(c, game.CreateRequest{Hero: body.Hero})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) turn(c context.Context, ctx *app.RequestContext) {
	gameID, err := h.requireAuthenticatedGame(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body turnRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.TurnUC.Execute(c, turn.Request{
		GameID:         gameID,
		IdempotencyKey: body.IdempotencyKey,
		Intent:         body.Intent,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	gameID, err := h.requireAuthenticatedGame(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.StatusUC.Execute(c, gameID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	gameID, err := h.requireAuthenticatedGame(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))

	resp, err := h.ReplayUC.Execute(c, replay.Request{GameID: gameID, Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingGameIDHeader = errors.New("missing x-game-id header")
var ErrMissingGameKeyHeader = errors.New("missing x-game-key header")
var ErrMissingGameCredentials = errors.New("missing game credentials")

func (h Handler) requireAuthenticatedGame(c context.Context, ctx *app.RequestContext) (string, error) {
	gameID := strings.TrimSpace(string(ctx.GetHeader(gameIDHeader)))
	gameKey := strings.TrimSpace(string(ctx.GetHeader(gameKeyHeader)))
	if gameID == "" && gameKey == "" {
		return "", ErrMissingGameCredentials
	}
	if gameID == "" {
		return "", ErrMissingGameIDHeader
	}
	if gameKey == "" {
		return "", ErrMissingGameKeyHeader
	}
	if err := h.AuthUC.Execute(c, auth.VerifyRequest{
		GameID:  gameID,
		GameKey: gameKey,
	}); err != nil {
		return "", err
	}
	return gameID, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingGameCredentials):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_game_credentials", err.Error())
	case errors.Is(err, ErrMissingGameIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_game_id", err.Error())
	case errors.Is(err, ErrMissingGameKeyHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_game_key", err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_game_credentials", err.Error())
	case errors.Is(err, turn.ErrWrongPhase):
		writeErrorBody(ctx, consts.StatusConflict, "wrong_phase", err.Error())
	case errors.Is(err, turn.ErrActionAlreadyTaken):
		writeErrorBody(ctx, consts.StatusConflict, "action_already_taken", err.Error())
	case errors.Is(err, turn.ErrGameFinished):
		writeErrorBody(ctx, consts.StatusConflict, "game_finished", err.Error())
	case errors.Is(err, tribe.ErrInvalidBallot):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_ballot", err.Error())
	case errors.Is(err, tribe.ErrInvalidPlea):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_plea", err.Error())
	case errors.Is(err, tribe.ErrUnknownPreset):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_hero", err.Error())
	case errors.Is(err, turn.ErrInvalidRequest),
		errors.Is(err, auth.ErrInvalidRequest),
		errors.Is(err, game.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
