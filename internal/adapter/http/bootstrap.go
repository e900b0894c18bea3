package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"tdm/internal/adapter/database/postgres"
	pgrepo "tdm/internal/adapter/database/postgres/repository"
	"tdm/internal/adapter/database/sqlite"
	sqliterepo "tdm/internal/adapter/database/sqlite/repository"
	"tdm/internal/adapter/http/routes"
	"tdm/pkg/config"
	"tdm/pkg/metrics"
)

// StartServer opens the configured store, wires the container, and serves
// until ctx is cancelled; then it drains in-flight requests.
func StartServer(ctx context.Context, cfg *config.AppConfig, logger zerolog.Logger) error {
	repos, closeDB, err := openStore(ctx, cfg, logger)

	if err != nil {
		return err
	}

	defer closeDB()

	container := NewContainer(repos, logger)

	router := routes.SetupRouter(routes.Handlers{
		Contacts:  container.ContactHandler,
		TodoItems: container.TodoItemHandler,
		Users:     container.UserHandler,
	}, metrics.NewAppMetrics(), logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.AppConfig, logger zerolog.Logger) (Repositories, func(), error) {
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL, cfg.MigrationsPath)

		if err != nil {
			return Repositories{}, nil, err
		}

		logger.Info().Msg("using postgres store")

		return Repositories{
			Contacts:   pgrepo.NewContactRepository(db),
			TodoItems:  pgrepo.NewTodoItemRepository(db),
			Users:      pgrepo.NewUserRepository(db),
			Roles:      pgrepo.NewRoleRepository(db),
			UnitOfWork: postgres.NewUnitOfWork(db),
		}, db.Close, nil
	}

	db, err := sqlite.NewDB(cfg.DatabasePath, cfg.MigrationsPath, logger)

	if err != nil {
		return Repositories{}, nil, err
	}

	logger.Info().Str("path", cfg.DatabasePath).Msg("using sqlite store")

	return Repositories{
		Contacts:   sqliterepo.NewContactRepository(db),
		TodoItems:  sqliterepo.NewTodoItemRepository(db),
		Users:      sqliterepo.NewUserRepository(db),
		Roles:      sqliterepo.NewRoleRepository(db),
		UnitOfWork: sqlite.NewUnitOfWork(db),
	}, func() { db.Close() }, nil
}
