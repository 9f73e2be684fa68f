// Package persistence selects the repository backend named by store.driver.
package persistence

import (
	"context"
	"log/slog"

	"nutriledger/config"
	"nutriledger/internal/domain/constants"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/errors"
	"nutriledger/internal/infra/persistence/gormdb"
	"nutriledger/internal/infra/persistence/sheet"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories and the status of the backend serving them.
type Result struct {
	fx.Out

	Users    repository.UserRepository
	FoodLogs repository.FoodLogRepository
	Status   repository.StoreStatus
}

type storeStatus struct {
	backend    string
	configured bool
}

func (s storeStatus) Backend() string  { return s.backend }
func (s storeStatus) Configured() bool { return s.configured }

// New builds the repositories. A sheets driver without credentials falls back
// to the in-memory store and reports itself as unconfigured.
func New(params Params) (Result, error) {
	cfg := params.Config
	logger := params.Logger

	switch cfg.Store.Driver {
	case constants.StoreDriverSheets:
		if !cfg.Store.Sheets.Configured() {
			logger.Warn("Sheets store is not configured, serving from memory; data will not persist")

			return rowStoreResult(sheet.NewMemoryStore(sheet.Headers()), storeStatus{backend: constants.StoreDriverMemory}), nil
		}

		store, err := sheet.NewGoogleStore(context.Background(), cfg.Store.Sheets, logger)
		if err != nil {
			return Result{}, err
		}
		params.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				for name, header := range sheet.Headers() {
					if err := sheet.EnsureHeader(ctx, store, name, header); err != nil {
						// Reads report unreachable until the worksheet exists.
						logger.Error("Failed to verify worksheet", slog.String("sheet", name), slog.Any("error", err))
					}
				}

				return nil
			},
		})

		return rowStoreResult(store, storeStatus{backend: constants.StoreDriverSheets, configured: true}), nil

	case constants.StoreDriverMemory:
		return rowStoreResult(sheet.NewMemoryStore(sheet.Headers()), storeStatus{backend: constants.StoreDriverMemory, configured: true}), nil

	case constants.StoreDriverSQLite, constants.StoreDriverPostgres:
		db, err := gormdb.New(gormdb.Params{Lifecycle: params.Lifecycle, Config: cfg, Logger: logger})
		if err != nil {
			return Result{}, err
		}

		return Result{
			Users:    gormdb.NewUserRepository(db),
			FoodLogs: gormdb.NewFoodLogRepository(db),
			Status:   storeStatus{backend: cfg.Store.Driver, configured: true},
		}, nil

	default:
		return Result{}, errors.Errorf("unknown store.driver %q", cfg.Store.Driver)
	}
}

func rowStoreResult(store sheet.RowStore, status storeStatus) Result {
	return Result{
		Users:    sheet.NewUserRepository(store),
		FoodLogs: sheet.NewFoodLogRepository(store),
		Status:   status,
	}
}
