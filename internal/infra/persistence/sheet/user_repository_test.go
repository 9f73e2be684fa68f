package sheet

import (
	"context"
	"testing"

	"nutriledger/internal/domain/constants"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(id, username string) *entity.User {
	return &entity.User{
		ID:         id,
		Username:   username,
		Credential: "secret",
		Approved:   true,
		Goals:      entity.NutrientValues{Calories: 1800, Protein: 120},
		Tier:       "Bronze",
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Headers())
	repo := NewUserRepository(store)

	require.NoError(t, repo.Create(ctx, newTestUser("u1", "Alice")))
	require.NoError(t, repo.Create(ctx, newTestUser("u2", "bob")))

	got, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "Alice", got.Username)
	assert.Equal(t, 1800.0, got.Goals.Calories)
	assert.Equal(t, 120.0, got.Goals.Protein)
	assert.Zero(t, got.Goals.Fiber)
	assert.True(t, got.Approved)

	got, err = repo.FindByID(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	_, err = repo.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateWritesHeaderOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Headers())
	repo := NewUserRepository(store)

	user := newTestUser("u1", "alice")
	user.RankPoints = 40
	require.NoError(t, repo.Create(ctx, user))

	records, err := store.ReadAll(ctx, constants.SheetUsers)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "u1", records[0]["UserID"])
	assert.Equal(t, "secret", records[0]["Password"])
	assert.Equal(t, "1800", records[0]["Calorie_Goal"])
	assert.Equal(t, "40", records[0]["Rank_Points"])
	assert.Equal(t, "TRUE", records[0]["Approved"])
}

func TestUserRepository_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty collection", func(t *testing.T) {
		repo := NewUserRepository(NewMemoryStore(Headers()))

		users, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := NewUserRepository(NewMemoryStore(nil))

		users, err := repo.FindAll(ctx)
		assert.Nil(t, users)
		assert.ErrorIs(t, err, domainerrors.ErrStoreUnreachable)
	})

	t.Run("corrupt cells read as zero", func(t *testing.T) {
		store := NewMemoryStore(Headers())
		row := make([]string, len(UsersHeader))
		row[0], row[1], row[3], row[13] = "u1", "carol", "lots", "N/A"
		require.NoError(t, store.AppendRow(ctx, constants.SheetUsers, row))

		users, err := NewUserRepository(store).FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Zero(t, users[0].Goals.Calories)
		assert.Zero(t, users[0].RankPoints)
	})
}

func TestUserRepository_UpdateFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Headers())
	repo := NewUserRepository(store)
	require.NoError(t, repo.Create(ctx, newTestUser("u1", "alice")))

	sessionUser, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	session := entity.NewSession(sessionUser)

	err = repo.UpdateFields(ctx, session, "u1", map[string]string{
		repository.FieldProteinGoal: "150",
		repository.FieldRankPoints:  "30",
		"Username":                  "mallory",
		"Favourite_Color":           "blue",
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 150.0, stored.Goals.Protein)
	assert.Equal(t, 30, stored.RankPoints)
	assert.Equal(t, "alice", stored.Username)
	assert.Equal(t, 1800.0, stored.Goals.Calories)

	assert.Equal(t, 150.0, session.User.Goals.Protein)
	assert.Equal(t, 30, session.User.RankPoints)
	assert.Equal(t, "alice", session.User.Username)
}

func TestUserRepository_UpdateFields_OtherSessionUntouched(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewMemoryStore(Headers()))
	require.NoError(t, repo.Create(ctx, newTestUser("u1", "alice")))
	require.NoError(t, repo.Create(ctx, newTestUser("u2", "bob")))

	admin := entity.NewSession(newTestUser("u2", "bob"))
	require.NoError(t, repo.UpdateFields(ctx, admin, "u1", map[string]string{repository.FieldApproved: "FALSE"}))

	assert.True(t, admin.User.Approved)
	stored, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, stored.Approved)
}

func TestUserRepository_UpdateFields_UnknownUser(t *testing.T) {
	repo := NewUserRepository(NewMemoryStore(Headers()))

	err := repo.UpdateFields(context.Background(), nil, "ghost", map[string]string{repository.FieldTier: "Gold"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateFailureIsIOFailure(t *testing.T) {
	repo := NewUserRepository(NewMemoryStore(nil))

	err := repo.Create(context.Background(), newTestUser("u1", "alice"))
	assert.ErrorIs(t, err, domainerrors.ErrIOFailure)
}
