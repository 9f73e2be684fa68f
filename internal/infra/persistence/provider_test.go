package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nutriledger/config"
	"nutriledger/internal/domain/constants"
	"nutriledger/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, store *config.StoreConfig) Params {
	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Store: store},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_UnconfiguredSheetsFallsBackToMemory(t *testing.T) {
	result, err := New(newParams(t, &config.StoreConfig{
		Driver: constants.StoreDriverSheets,
		Sheets: &config.SheetsConfig{SpreadsheetID: "abc"},
	}))
	require.NoError(t, err)

	assert.False(t, result.Status.Configured())
	assert.Equal(t, constants.StoreDriverMemory, result.Status.Backend())

	ctx := context.Background()
	require.NoError(t, result.Users.Create(ctx, &entity.User{ID: "u1", Username: "alice"}))
	users, err := result.Users.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestNew_Memory(t *testing.T) {
	result, err := New(newParams(t, &config.StoreConfig{Driver: constants.StoreDriverMemory}))
	require.NoError(t, err)
	assert.True(t, result.Status.Configured())
	assert.NotNil(t, result.FoodLogs)
}

func TestNew_SQLite(t *testing.T) {
	params := newParams(t, &config.StoreConfig{
		Driver: constants.StoreDriverSQLite,
		SQLite: &config.SQLiteConfig{Path: "file:provider_test?mode=memory&cache=shared"},
	})

	result, err := New(params)
	require.NoError(t, err)
	assert.Equal(t, constants.StoreDriverSQLite, result.Status.Backend())

	lc, ok := params.Lifecycle.(*fxtest.Lifecycle)
	require.True(t, ok)
	lc.RequireStart()
	defer lc.RequireStop()

	users, err := result.Users.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(newParams(t, &config.StoreConfig{Driver: "mongo"}))
	assert.Error(t, err)
}
