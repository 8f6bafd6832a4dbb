package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	mem "petstore/internal/adapters/storage/memory"
	pg "petstore/internal/adapters/storage/postgres"
	"petstore/internal/config"
	"petstore/internal/domain/pets"
	"petstore/internal/platform/logger"
	"petstore/internal/platform/metrics"
	"petstore/internal/router"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFiles = []string{".env", ".env.local"}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath, envFiles...)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
}

func serve(ctx context.Context, cfg *config.Config) error {
	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	store, closeStore, err := openStore(ctx, cfg, log, m)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.NewRouter(router.Options{
			Store:   store,
			Logger:  log,
			Metrics: m,
			Swagger: cfg.Swagger.Enabled,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.Server.Addr), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore abre el record store según config. El cierre queda a cargo de serve.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger, m *metrics.Metrics) (pets.Repository, func(), error) {
	if cfg.Storage.Driver != config.DriverPostgres {
		log.Info("using in-memory store")
		return mem.NewPetRepo(), func() {}, nil
	}

	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warn("closing postgres", zap.Error(err))
		}
	}

	if cfg.Storage.AutoMigrate {
		applied, err := pg.Migrate(ctx, db)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		log.Info("migrations applied", zap.Strings("files", applied))
	}

	if m != nil {
		if err := m.RegisterDBStats(collectors.NewDBStatsCollector(db, "petstore")); err != nil {
			log.Warn("db stats collector not registered", zap.Error(err))
		}
	}

	return pg.NewPetsRepo(db), closeDB, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := pg.Open(ctx, cfg.Storage.DSN, pg.PoolConfig{
		MaxOpenConns:    cfg.Storage.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
