package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"nutriledger/config"
	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/infra/persistence/sheet"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			PasswordMode:   "plaintext",
			AccessTokenTTL: time.Hour,
			AdminUsernames: []string{"Root"},
		},
		Ledger: &config.LedgerConfig{
			Timezone:         "UTC",
			PointsPerLog:     10,
			LeaderboardLimit: 50,
		},
	}
}

// newMemoryRepos returns repositories over a fresh in-memory row store.
func newMemoryRepos() (repository.UserRepository, repository.FoodLogRepository) {
	store := sheet.NewMemoryStore(sheet.Headers())

	return sheet.NewUserRepository(store), sheet.NewFoodLogRepository(store)
}

func seedUser(t *testing.T, repo repository.UserRepository, user *entity.User) *entity.Session {
	t.Helper()

	require.NoError(t, repo.Create(context.Background(), user))
	stored, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)

	return entity.NewSession(stored)
}
