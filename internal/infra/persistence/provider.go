// Package persistence selects the credential store backend.
package persistence

import (
	"log/slog"

	"authsvc/config"
	"authsvc/internal/domain/repository"
	"authsvc/internal/errors"
	"authsvc/internal/infra/persistence/memory"
	"authsvc/internal/infra/persistence/mongo"
	"authsvc/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the user repository, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewUserRepository connects the configured backend and returns its repository.
// Only the selected backend opens a connection.
func NewUserRepository(params Params) (repository.UserRepository, error) {
	logger := params.Logger.With(slog.String("storage", params.Config.Storage.Driver))

	switch params.Config.Storage.Driver {
	case config.StorageDriverMongo:
		client, err := mongo.New(mongo.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return mongo.NewUserRepository(mongo.UserRepositoryParams{
			Lifecycle: params.Lifecycle,
			Client:    client,
			Config:    params.Config,
			Logger:    logger,
		}), nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewUserRepository(postgres.UserRepositoryParams{
			Lifecycle: params.Lifecycle,
			DB:        db,
			Logger:    logger,
		}), nil

	case config.StorageDriverMemory:
		logger.Warn("Using in-memory user store; registrations are lost on restart")

		return memory.NewUserRepository(), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
