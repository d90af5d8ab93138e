package main

import (
	"context"
	"log"
	"time"

	staticcontent "castaway/internal/adapter/content/static"
	httpadapter "castaway/internal/adapter/http"
	metricsinmem "castaway/internal/adapter/metrics/inmemory"
	gormrepo "castaway/internal/adapter/repo/gorm"
	"castaway/internal/adapter/repo/memory"
	"castaway/internal/app/auth"
	"castaway/internal/app/game"
	"castaway/internal/app/ports"
	"castaway/internal/app/replay"
	"castaway/internal/app/status"
	"castaway/internal/app/turn"
	"castaway/internal/domain/tribe"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/app/server"
)

type config struct {
	HTTPAddr      string `env:"CASTAWAY_HTTP_ADDR" envDefault:":8080"`
	DBDSN         string `env:"CASTAWAY_DB_DSN"`
	MigrationsDir string `env:"CASTAWAY_MIGRATIONS_DIR" envDefault:"./migrations"`
	ContentRoot   string `env:"CASTAWAY_CONTENT_ROOT"`
	RandSeed      int64  `env:"CASTAWAY_RAND_SEED" envDefault:"0"`

	// Rule-set switch: whether tied tribe mates may vote for themselves
	// in a revote.
	AllowSelfVoteOnRevote bool `env:"CASTAWAY_ALLOW_SELF_VOTE_ON_REVOTE" envDefault:"true"`
}

type repoSet struct {
	Games       ports.GameRepository
	Credentials ports.GameCredentialRepository
	Turns       ports.TurnExecutionRepository
	Events      ports.EventRepository
	Tx          ports.TxManager
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	repos := mustBuildRepos(cfg)
	contentProvider := staticcontent.Provider{Root: cfg.ContentRoot}
	kpiRecorder := metricsinmem.NewRecorder()
	rng := tribe.NewRand(cfg.RandSeed)
	councilCfg := tribe.CouncilConfig{AllowSelfVoteOnRevote: cfg.AllowSelfVoteOnRevote}

	h := httpadapter.Handler{
		CreateUC: game.CreateUseCase{
			TxManager:   repos.Tx,
			GameRepo:    repos.Games,
			Credentials: repos.Credentials,
			Traits:      tribe.DefaultTraitTable(),
			Rand:        rng,
			Now:         time.Now,
		},
		AuthUC: auth.VerifyUseCase{Credentials: repos.Credentials},
		TurnUC: turn.UseCase{
			TxManager: repos.Tx,
			GameRepo:  repos.Games,
			TurnRepo:  repos.Turns,
			EventRepo: repos.Events,
			Content:   contentProvider,
			Metrics:   kpiRecorder,
			Settle:    tribe.SettlementService{},
			Council:   tribe.CouncilService{Config: councilCfg},
			Judgment:  tribe.JudgmentService{},
			Rand:      rng,
			Now:       time.Now,
		},
		StatusUC: status.UseCase{GameRepo: repos.Games},
		ReplayUC: replay.UseCase{EventRepo: repos.Events},
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	log.Printf("castaway server listening on %s", cfg.HTTPAddr)
	s.Spin()
}

func mustBuildRepos(cfg config) repoSet {
	if cfg.DBDSN == "" {
		log.Println("CASTAWAY_DB_DSN not set, running with the in-memory store")
		store := memory.NewStore()
		return repoSet{
			Games:       memory.NewGameRepo(store),
			Credentials: memory.NewGameCredentialRepo(store),
			Turns:       memory.NewTurnExecutionRepo(store),
			Events:      memory.NewEventRepo(store),
			Tx:          memory.NewTxManager(store),
		}
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	return repoSet{
		Games:       gormrepo.NewGameRepo(db),
		Credentials: gormrepo.NewGameCredentialRepo(db),
		Turns:       gormrepo.NewTurnExecutionRepo(db),
		Events:      gormrepo.NewEventRepo(db),
		Tx:          gormrepo.NewTxManager(db),
	}
}
