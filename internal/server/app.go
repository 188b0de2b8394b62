// Package server wires the mailpassd server together: storage, settings,
// the POPPASSD password-change pipeline and the gRPC endpoint, with
// graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/mailpassd/internal/cryptox"
	"github.com/dmitrijs2005/mailpassd/internal/logging"
	"github.com/dmitrijs2005/mailpassd/internal/server/config"
	"github.com/dmitrijs2005/mailpassd/internal/server/models"
	"github.com/dmitrijs2005/mailpassd/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mailpassd/internal/server/services"

	gs "github.com/dmitrijs2005/mailpassd/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	settingsService *services.SettingsService
	accountService  *services.AccountService
}

// NewApp opens storage, runs migrations, loads the stored settings and
// builds the services. An empty DatabaseDSN selects in-memory storage.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "no database configured, using in-memory storage")
		rm = repomanager.NewInMemoryRepositoryManager()
	} else {
		var err error
		db, err = repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}

		rm, err = repomanager.NewPostgresRepositoryManager(cryptox.DeriveStorageKey(c.SecretKey))
		if err != nil {
			_ = db.Close()
			return nil, err
		}

		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	}

	defaults := &models.Settings{
		SupportedServers: c.SupportedServers,
		Host:             c.PoppassdHost,
		Port:             c.PoppassdPort,
	}
	ss := services.NewSettingsService(db, rm, defaults, logger)
	if err := ss.Load(ctx); err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("settings load error: %w", err)
	}

	passwords := services.NewPasswordService(ss,
		services.NewClientFactory(c.PoppassdDialTimeout, c.PoppassdIOTimeout), logger)
	as := services.NewAccountService(db, rm, ss, services.NewPipeline(passwords), logger)

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		repomanager:     rm,
		settingsService: ss,
		accountService:  as,
	}, nil
}

func (app *App) startGRPCServer(ctx context.Context) error {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accountService, app.settingsService, app.config.SecretKey)
	return s.Run(ctx)
}

// Run serves until ctx is cancelled or a shutdown signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	err := app.startGRPCServer(ctx)
	if err != nil {
		app.logger.Error(ctx, "grpc server failed", "error", err)
	}

	if app.db != nil {
		if cerr := app.db.Close(); cerr != nil {
			app.logger.Error(ctx, "db close failed", "error", cerr)
		}
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
