package commands

import (
	"context"
	"fmt"

	"github.com/milindvishnoi/FSND/config"
	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/extension"
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/version"

	_ "github.com/milindvishnoi/FSND/data/postgres"
	_ "github.com/milindvishnoi/FSND/data/redis"
	_ "github.com/milindvishnoi/FSND/data/sqlite"

	_ "github.com/milindvishnoi/FSND/internal/coffee"
	_ "github.com/milindvishnoi/FSND/internal/fyyur"
	_ "github.com/milindvishnoi/FSND/internal/trivia"
)

// app bundles what every command needs
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	data    *data.Data
	cleanup func()
}

func bootstrap(ctx context.Context, configFile string) (*app, error) {
	config.SetPath(configFile)
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, logCleanup, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log.SetVersion(version.GetVersionInfo().Version)

	d, dataCleanup, err := data.New(ctx, cfg.Data)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("failed to open data layer: %w", err)
	}

	return &app{
		cfg:  cfg,
		log:  log,
		data: d,
		cleanup: func() {
			dataCleanup()
			logCleanup()
		},
	}, nil
}

// modules initializes the configured modules without serving them
func (a *app) modules(ctx context.Context) (*extension.Manager, error) {
	m := extension.NewManager(a.cfg, a.data, a.log)
	if err := m.InitExtensions(ctx); err != nil {
		return nil, err
	}
	return m, nil
}
