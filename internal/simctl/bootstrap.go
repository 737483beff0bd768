// Package simctl builds the cobra command tree for cmd/simctl, grounded
// on stormlightlabs-baseball's cmd package: command builders live here,
// the root command and main func live in cmd/simctl/main.go.
package simctl

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nfl-analytics/dynasty-core/internal/config"
	"github.com/nfl-analytics/dynasty-core/internal/contract"
	"github.com/nfl-analytics/dynasty-core/internal/database"
	"github.com/nfl-analytics/dynasty-core/internal/draft"
	"github.com/nfl-analytics/dynasty-core/internal/eventlog"
	"github.com/nfl-analytics/dynasty-core/internal/hostapi"
	"github.com/nfl-analytics/dynasty-core/internal/milestone"
	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/phase"
	"github.com/nfl-analytics/dynasty-core/internal/simulation"
	"github.com/nfl-analytics/dynasty-core/internal/store"
	"github.com/nfl-analytics/dynasty-core/pkg/logger"
)

// session bundles a Manager and the resources it needs closed when a
// command finishes; every subcommand opens one via newSession and
// defers session.Close.
type session struct {
	manager *hostapi.Manager
	db      *database.PostgresDB
}

func (s *session) Close() {
	s.db.Close()
}

// newSession loads configuration and wires a Manager exactly the way
// cmd/api/main.go does, minus the HTTP server and account/auth slice
// this CLI has no use for.
func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	}
	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	appLog := logger.New(logger.Config{Level: cfg.App.LogLevel, Format: "json"})

	sqlDB := db.DB
	dynastyRepo := store.NewDynastyRepository(sqlDB)
	standingsRepo := store.NewStandingsRepository(sqlDB)
	contractRepo := store.NewContractRepository(sqlDB)
	draftRepo := store.NewDraftRepository(sqlDB)
	eventLog := eventlog.New(sqlDB)
	dataStore := store.New(sqlDB)

	contractSvc := contract.New(contractRepo, appLog)
	draftSvc := draft.NewService(draft.NewPostgresRepository(draftRepo), dynastyRepo, redisClient, appLog)
	milestoneRouter := milestone.New(eventLog, redisClient)

	year := time.Now().Year()
	bounds := phase.Boundaries{
		PreseasonStart:     models.NewDate(year, cfg.Simulation.PreseasonStartMonth, cfg.Simulation.PreseasonStartDay),
		RegularSeasonStart: models.NewDate(year, cfg.Simulation.RegularSeasonStartMonth, cfg.Simulation.RegularSeasonStartDay),
	}

	manager := hostapi.NewManager(
		dataStore, dynastyRepo, standingsRepo, contractRepo, draftRepo, eventLog,
		milestoneRouter, draftSvc, contractSvc,
		hostapi.Config{
			Bounds:       bounds,
			GameProvider: simulation.NewPlaceholderGameResultProvider(),
		},
		appLog,
	)

	return &session{manager: manager, db: db}, nil
}
